package report

import (
	"context"
	"testing"

	"github.com/kbukum/callintel/provider"
)

func TestCleanScript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "Hi, this is Trent from Acme.",
			want: "Hi, this is Trent from Acme.",
		},
		{
			name: "markdown fence stripped",
			in:   "```text\nHi, this is Trent.\n```",
			want: "Hi, this is Trent.",
		},
		{
			name: "surrounding quotes stripped",
			in:   `"Hi, this is Trent."`,
			want: "Hi, this is Trent.",
		},
		{
			name: "script heading stripped",
			in:   "Script: Hi, this is Trent.",
			want: "Hi, this is Trent.",
		},
		{
			name: "whitespace trimmed",
			in:   "  Hi there.  \n",
			want: "Hi there.",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanScript(tc.in); got != tc.want {
				t.Errorf("CleanScript(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

type stubGenerator struct {
	name string
}

func (s *stubGenerator) Name() string                       { return s.name }
func (s *stubGenerator) IsAvailable(_ context.Context) bool { return true }
func (s *stubGenerator) Execute(_ context.Context, _ Request) (*Draft, error) {
	return &Draft{Script: "Hi.", ProposedOutcome: "CONNECTED"}, nil
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterFactory("stub", func(cfg map[string]any) (Generator, error) {
		return &stubGenerator{name: "stub"}, nil
	})

	gen, err := reg.Create("stub", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gen.Name() != "stub" {
		t.Errorf("Name = %q, want stub", gen.Name())
	}

	if _, err := reg.Create("missing", nil); err == nil {
		t.Error("Create of unregistered factory should error")
	}

	reg.Set("cached", gen)
	if got, ok := reg.Get("cached"); !ok || got != gen {
		t.Error("Get should return the cached instance")
	}
	if _, ok := reg.Get("absent"); ok {
		t.Error("Get of absent instance should report false")
	}

	if names := reg.List(); len(names) != 1 || names[0] != "stub" {
		t.Errorf("List = %v, want [stub]", names)
	}
}

// rawBackend stands in for a text-in, text-out model client.
type rawBackend struct{}

func (r *rawBackend) Name() string                       { return "raw" }
func (r *rawBackend) IsAvailable(_ context.Context) bool { return true }
func (r *rawBackend) Execute(_ context.Context, _ string) (string, error) {
	return "Script: Hi, this is Trent.", nil
}

func TestGeneratorThroughAdapt(t *testing.T) {
	var gen Generator = provider.Adapt[Request, *Draft](
		&rawBackend{},
		"raw-adapter",
		func(_ context.Context, req Request) (string, error) {
			return req.Transcript, nil
		},
		func(output string) (*Draft, error) {
			return &Draft{Script: CleanScript(output)}, nil
		},
	)

	draft, err := gen.Execute(context.Background(), Request{Transcript: "You: Hello."})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if draft.Script != "Hi, this is Trent." {
		t.Errorf("Script = %q, want cleaned backend output", draft.Script)
	}
	if gen.Name() != "raw-adapter" {
		t.Errorf("Name = %q, want raw-adapter", gen.Name())
	}
}
