package slugx

import "testing"

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"already lower", "portfolio", "portfolio"},
		{"punctuation run", "Go, Postgres & JWT!", "go-postgres-jwt"},
		{"leading and trailing junk", "  --My First Post!  ", "my-first-post"},
		{"digits kept", "Top 10 Tips (2024)", "top-10-tips-2024"},
		{"unicode dropped", "Caffè Über", "caff-ber"},
		{"only junk", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.title); got != tt.want {
				t.Fatalf("Make(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestMake_Deterministic(t *testing.T) {
	t.Parallel()

	title := "Same Title, Same Slug"
	if Make(title) != Make(title) {
		t.Fatalf("slug derivation is not deterministic")
	}
}
