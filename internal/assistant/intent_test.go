package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arohealth/healthbot/internal/config"
)

func TestIsInDomainKeywordSkipsRemote(t *testing.T) {
	model := &fakeModel{}
	c := NewClassifier(model)

	assert.True(t, c.IsInDomain(context.Background(), "What is the right DOSE of dolo?"))
	assert.Empty(t, model.calls, "keyword hits must not call the remote classifier")
}

func TestIsInDomainRemoteVerdicts(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  bool
	}{
		{"exact yes", "YES", true},
		{"lowercase yes", "yes", true},
		{"padded yes", "  Yes \n", true},
		{"no", "NO", false},
		{"chatty yes", "YES, this is medical", false},
		{"garbage", "maybe", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model := &fakeModel{replies: []string{tc.reply}}
			c := NewClassifier(model)

			got := c.IsInDomain(context.Background(), "how do magnets work")

			assert.Equal(t, tc.want, got)
			assert.Len(t, model.calls, 1)
			assert.Equal(t, float32(config.ClassifierTemp), model.calls[0].temp)
		})
	}
}

func TestIsInDomainFailsClosedOnRemoteError(t *testing.T) {
	model := &fakeModel{err: errors.New("timeout")}
	c := NewClassifier(model)

	assert.False(t, c.IsInDomain(context.Background(), "how do magnets work"))
}

func TestIsDocQuestion(t *testing.T) {
	assert.True(t, IsDocQuestion("What is written IN THIS PDF?"))
	assert.True(t, IsDocQuestion("summarize the attachment"))
	assert.False(t, IsDocQuestion("what causes malaria"))
}
