package run

import (
	"testing"

	"github.com/spf13/afero"
)

func TestEvent_RepoName(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		event *Event
		exp   string
	}{
		{name: "nil event", event: nil, exp: ""},
		{name: "nil repository", event: &Event{}, exp: ""},
		{name: "with repository", event: &Event{Repository: &Repository{Name: "my-repo"}}, exp: "my-repo"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := d.event.RepoName(); got != d.exp {
				t.Errorf("wanted %q, got %q", d.exp, got)
			}
		})
	}
}

func TestEvent_PRNumber(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		event *Event
		exp   int
	}{
		{name: "nil event", event: nil, exp: 0},
		{name: "empty event", event: &Event{}, exp: 0},
		{name: "pull request", event: &Event{PullRequest: &PullRequest{Number: 123}}, exp: 123},
		{name: "issue", event: &Event{Issue: &Issue{Number: 456}}, exp: 456},
		{
			name:  "both - pull request takes precedence",
			event: &Event{PullRequest: &PullRequest{Number: 123}, Issue: &Issue{Number: 456}},
			exp:   123,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := d.event.PRNumber(); got != d.exp {
				t.Errorf("wanted %d, got %d", d.exp, got)
			}
		})
	}
}

func Test_readEvent(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	payload := `{
  "pull_request": {
    "number": 17
  },
  "repository": {
    "name": "lintdiff"
  }
}`
	if err := afero.WriteFile(fs, "/github/workflow/event.json", []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := &Event{}
	if err := readEvent(fs, ev, "/github/workflow/event.json"); err != nil {
		t.Fatal(err)
	}
	if ev.PRNumber() != 17 {
		t.Errorf("PRNumber() = %d, want 17", ev.PRNumber())
	}
	if ev.RepoName() != "lintdiff" {
		t.Errorf("RepoName() = %q, want lintdiff", ev.RepoName())
	}
}

func Test_readEvent_missingFile(t *testing.T) {
	t.Parallel()
	ev := &Event{}
	if err := readEvent(afero.NewMemMapFs(), ev, "/github/workflow/event.json"); err == nil {
		t.Fatal("an error must be returned when the event payload doesn't exist")
	}
}
