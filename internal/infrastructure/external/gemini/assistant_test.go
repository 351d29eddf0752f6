package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillconnect/skillconnect-hub/internal/application/command"
)

func TestSystemInstruction(t *testing.T) {
	t.Run("includes profile", func(t *testing.T) {
		prompt := systemInstruction(command.AssistantProfile{
			Name:   "Alex Doe",
			Bio:    "Frontend developer moving into ML.",
			Skills: []string{"React", "Python"},
		})

		assert.Contains(t, prompt, "SkillBuddy")
		assert.Contains(t, prompt, "Alex Doe")
		assert.Contains(t, prompt, "Frontend developer moving into ML.")
		assert.Contains(t, prompt, "React, Python")
		assert.Contains(t, prompt, "under 100 words")
	})

	t.Run("empty skills", func(t *testing.T) {
		prompt := systemInstruction(command.AssistantProfile{Name: "Alex Doe"})
		assert.Contains(t, prompt, "not listed yet")
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.InDelta(t, 0.7, float64(cfg.Temperature), 0.001)
	assert.InDelta(t, 0.9, float64(cfg.TopP), 0.001)
}
