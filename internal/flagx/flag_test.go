package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "-a", ":5000"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-a", ":5000"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "order preserved across several allowed flags",
			args:    []string{"-a", ":8080", "-x", "1", "-d", "postgres://db"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", ":8080", "-d", "postgres://db"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next arg that looks like a flag is not a value",
			args:    []string{"-c", "-a"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJSONConfigPath(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-a", ":5000", "-c", "edvora.json"}
	assert.Equal(t, "edvora.json", JSONConfigPath())

	os.Args = []string{"bin", "-config=other.json"}
	assert.Equal(t, "other.json", JSONConfigPath())

	os.Args = []string{"bin", "-a", ":5000"}
	assert.Equal(t, "", JSONConfigPath())
}
