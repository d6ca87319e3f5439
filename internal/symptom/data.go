package symptom

// Disease is one entry of the curated health directory. The table is static
// configuration: loaded once, never mutated at runtime.
type Disease struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Image       string     `json:"image"`
	Info        string     `json:"info"`
	KeySymptoms []string   `json:"key_symptoms"`
	Symptoms    []string   `json:"symptoms"`
	Precautions []string   `json:"precautions"`
	Prevention  []string   `json:"prevention"`
	Medicines   []Medicine `json:"medicines"`
}

type Medicine struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Dosage  string `json:"dosage"`
}

var diseases = []Disease{
	// Infectious
	{
		ID:          1,
		Name:        "Influenza (Flu)",
		Category:    "Infectious Diseases",
		Image:       "https://images.unsplash.com/photo-1706201763911-3ca332534efd?q=80&w=1048&auto=format&fit=crop",
		Info:        "Flu is a viral infection affecting nose, throat, and lungs. It spreads through droplets.",
		KeySymptoms: []string{"fever", "cough", "body pain", "fatigue"},
		Symptoms:    []string{"fever", "cough", "sore throat", "body pain", "fatigue", "headache"},
		Precautions: []string{"Rest", "Wear a mask if coughing", "Avoid close contact"},
		Prevention:  []string{"Flu vaccination", "Handwashing", "Cover cough/sneeze"},
		Medicines: []Medicine{
			{Name: "Paracetamol", Purpose: "Fever / body pain", Dosage: "500mg every 6–8 hrs (max 3g/day)"},
			{Name: "Oseltamivir", Purpose: "Antiviral", Dosage: "75mg twice daily (doctor advice)"},
		},
	},
	{
		ID:          2,
		Name:        "Dengue",
		Category:    "Infectious Diseases",
		Image:       "https://images.unsplash.com/photo-1707943768453-7850f916ebde?q=80&w=1171&auto=format&fit=crop",
		Info:        "Dengue is a mosquito-borne viral infection. Some cases can become severe.",
		KeySymptoms: []string{"fever", "headache", "body pain", "nausea"},
		Symptoms:    []string{"fever", "headache", "body pain", "nausea", "vomiting", "rash"},
		Precautions: []string{"Avoid mosquito bites", "Rest", "Drink fluids"},
		Prevention:  []string{"Remove stagnant water", "Use mosquito nets", "Wear full sleeves"},
		Medicines: []Medicine{
			{Name: "Paracetamol", Purpose: "Fever", Dosage: "500mg every 6–8 hrs (max 3g/day)"},
			{Name: "Avoid Ibuprofen/Aspirin", Purpose: "Bleeding risk", Dosage: "Avoid unless doctor says"},
		},
	},
	{
		ID:          3,
		Name:        "COVID-19",
		Category:    "Infectious Diseases",
		Image:       "https://images.unsplash.com/photo-1584036561566-baf8f5f1b144?q=80&w=1032&auto=format&fit=crop",
		Info:        "COVID-19 is a viral respiratory disease. Symptoms vary from mild to severe.",
		KeySymptoms: []string{"fever", "cough", "fatigue"},
		Symptoms:    []string{"fever", "cough", "fatigue", "headache", "body pain"},
		Precautions: []string{"Isolate if sick", "Wear a mask", "Stay hydrated"},
		Prevention:  []string{"Vaccination", "Hand hygiene", "Avoid crowded places"},
		Medicines: []Medicine{
			{Name: "Paracetamol", Purpose: "Fever / body pain", Dosage: "500mg every 6–8 hrs (max 3g/day)"},
		},
	},
	{
		ID:          4,
		Name:        "Malaria",
		Category:    "Infectious Diseases",
		Image:       "https://images.unsplash.com/photo-1581594549595-35f6edc7b762?w=800&q=80",
		Info:        "Malaria is caused by parasites transmitted by mosquitoes. Fever may come in cycles.",
		KeySymptoms: []string{"fever", "headache", "vomiting", "fatigue"},
		Symptoms:    []string{"fever", "headache", "vomiting", "fatigue", "body pain"},
		Precautions: []string{"See doctor early", "Rest", "Hydrate"},
		Prevention:  []string{"Mosquito nets", "Repellent", "Avoid stagnant water"},
		Medicines: []Medicine{
			{Name: "Antimalarials", Purpose: "Treatment", Dosage: "Doctor prescription only"},
		},
	},

	// Respiratory
	{
		ID:          10,
		Name:        "Bronchitis",
		Category:    "Respiratory Diseases",
		Image:       "https://images.unsplash.com/photo-1743767587847-08c42b31cdec?w=1000&auto=format&fit=crop&q=60",
		Info:        "Bronchitis is inflammation of bronchial tubes causing cough and mucus.",
		KeySymptoms: []string{"cough", "fever", "fatigue"},
		Symptoms:    []string{"cough", "fever", "fatigue", "body pain"},
		Precautions: []string{"Avoid smoke", "Warm fluids", "Rest"},
		Prevention:  []string{"Avoid smoking", "Hand hygiene", "Vaccines (as advised)"},
		Medicines: []Medicine{
			{Name: "Cough syrup", Purpose: "Symptom relief", Dosage: "As per label / doctor advice"},
		},
	},
	{
		ID:          11,
		Name:        "Pneumonia",
		Category:    "Respiratory Diseases",
		Image:       "https://images.unsplash.com/photo-1588776814546-1ffcf47267a5?w=800&q=80",
		Info:        "Pneumonia is lung infection that can cause fever, cough, and breathing difficulty.",
		KeySymptoms: []string{"fever", "cough", "fatigue"},
		Symptoms:    []string{"fever", "cough", "fatigue", "body pain"},
		Precautions: []string{"See doctor if breathing issue", "Rest", "Hydration"},
		Prevention:  []string{"Vaccines", "Hand hygiene", "Avoid sick contacts"},
		Medicines: []Medicine{
			{Name: "Antibiotics", Purpose: "Treatment (if bacterial)", Dosage: "Doctor prescription only"},
		},
	},
	{
		ID:          12,
		Name:        "Sinusitis",
		Category:    "Respiratory Diseases",
		Image:       "https://plus.unsplash.com/premium_photo-1723107465475-257ff24d7280?w=1000&auto=format&fit=crop&q=60",
		Info:        "Sinusitis is inflammation of sinuses causing headache, facial pain, and congestion.",
		KeySymptoms: []string{"headache", "cold"},
		Symptoms:    []string{"headache", "cold", "fatigue"},
		Precautions: []string{"Steam inhalation", "Warm fluids", "Rest"},
		Prevention:  []string{"Treat allergies", "Avoid smoke", "Hand hygiene"},
		Medicines: []Medicine{
			{Name: "Saline spray", Purpose: "Nasal relief", Dosage: "2–3 sprays/day (as needed)"},
		},
	},

	// Digestive
	{
		ID:          20,
		Name:        "Food Poisoning",
		Category:    "Digestive Diseases",
		Image:       "https://media.istockphoto.com/id/1014317284/photo/bacteria-and-germs-on-vegetables.jpg?s=612x612&w=0&k=20",
		Info:        "Food poisoning can cause nausea, vomiting, diarrhea, and cramps after contaminated food.",
		KeySymptoms: []string{"nausea", "vomiting", "fever"},
		Symptoms:    []string{"nausea", "vomiting", "fever", "fatigue"},
		Precautions: []string{"Oral rehydration", "Rest", "Avoid oily foods"},
		Prevention:  []string{"Clean food/water", "Cook properly", "Handwash"},
		Medicines: []Medicine{
			{Name: "ORS", Purpose: "Rehydration", Dosage: "Small sips often (after each loose stool)"},
		},
	},
	{
		ID:          21,
		Name:        "Gastritis",
		Category:    "Digestive Diseases",
		Image:       "https://eremedium.in/wp-content/uploads/2024/05/Symptoms-of-Gastritis.jpg",
		Info:        "Gastritis is irritation of stomach lining; may cause nausea and discomfort.",
		KeySymptoms: []string{"nausea", "vomiting"},
		Symptoms:    []string{"nausea", "vomiting", "fatigue"},
		Precautions: []string{"Small meals", "Avoid spicy food", "Hydrate"},
		Prevention:  []string{"Avoid excess painkillers", "Healthy diet", "Stress control"},
		Medicines: []Medicine{
			{Name: "Antacid", Purpose: "Acidity relief", Dosage: "After meals (as per label)"},
		},
	},

	// Chronic
	{
		ID:          30,
		Name:        "Hypertension",
		Category:    "Chronic Diseases",
		Image:       "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=800&q=80",
		Info:        "Hypertension is persistently high blood pressure. Often no symptoms.",
		KeySymptoms: []string{"headache", "dizziness"},
		Symptoms:    []string{"headache", "dizziness", "fatigue"},
		Precautions: []string{"Reduce salt", "Exercise", "Manage stress"},
		Prevention:  []string{"Healthy diet", "Maintain weight", "Regular BP checks"},
		Medicines: []Medicine{
			{Name: "Amlodipine", Purpose: "BP control", Dosage: "5mg once daily (doctor advice)"},
		},
	},
	{
		ID:          31,
		Name:        "Diabetes",
		Category:    "Chronic Diseases",
		Image:       "https://images.unsplash.com/photo-1554498808-d3ae8f23540c?w=800&q=80",
		Info:        "Diabetes affects blood sugar control. Symptoms may include tiredness (not always).",
		KeySymptoms: []string{"fatigue", "dizziness"},
		Symptoms:    []string{"fatigue", "dizziness"},
		Precautions: []string{"Healthy diet", "Exercise", "Monitor sugar"},
		Prevention:  []string{"Weight control", "Balanced diet", "Regular checkups"},
		Medicines: []Medicine{
			{Name: "Metformin", Purpose: "Sugar control", Dosage: "500mg once/twice daily (doctor advice)"},
		},
	},
}
