package ocr

import "testing"

func TestNewProvider(t *testing.T) {
	t.Run("local needs no credentials", func(t *testing.T) {
		p, err := NewProvider("local")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name() != "local" {
			t.Errorf("name = %q", p.Name())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := NewProvider("tesseract"); err == nil {
			t.Error("expected an error for an unknown provider kind")
		}
	})

	t.Run("openai requires an api key", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		if _, err := NewProvider("openai"); err == nil {
			t.Error("expected an error without OPENAI_API_KEY")
		}
	})
}

func TestFirstJSONLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"clean", `{"text":"hi"}`, `{"text":"hi"}`},
		{"preceded by chatter", "loading model...\nwarmup done\n{\"text\":\"hi\"}", `{"text":"hi"}`},
		{"indented", "  {\"text\":\"hi\"}  \n", `{"text":"hi"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := string(firstJSONLine([]byte(tc.in))); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
