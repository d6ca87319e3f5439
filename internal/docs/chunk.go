package docs

// ChunkText splits text into fixed-size windows with a trailing overlap so
// that sentences cut at a boundary still appear whole in one chunk.
func ChunkText(text string, size, overlap int) []string {
	if text == "" || size <= 0 {
		return nil
	}
	if overlap >= size {
		overlap = size - 1
	}

	runes := []rune(text)
	var chunks []string
	for i := 0; i < len(runes); i += size - overlap {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
