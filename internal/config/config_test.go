package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/takoeight0821/awesome/internal/config"
)

func Test_Load(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		expect    func(config.Config) config.Config
		expectErr bool
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			expect:  func(c config.Config) config.Config { return c },
		},
		{
			name:    "prompt only",
			content: `prompt = "awesome> "`,
			expect: func(c config.Config) config.Config {
				c.Prompt = "awesome> "
				return c
			},
		},
		{
			name:    "both keys",
			content: "prompt = \"$ \"\nhistory = \"/tmp/hist\"\n",
			expect: func(c config.Config) config.Config {
				c.Prompt = "$ "
				c.History = "/tmp/hist"
				return c
			},
		},
		{
			name:      "malformed",
			content:   "prompt = ",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}

			actual, err := config.Load(path)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expect(config.Default()), actual)
		})
	}
}

func Test_Load_missingFile(t *testing.T) {
	assert := assert.New(t)

	actual, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.NoError(err)
	assert.Equal(config.Default(), actual)
	assert.Equal(config.DefaultPrompt, actual.Prompt)
	assert.Equal(".awesome_history", filepath.Base(actual.History))
}
