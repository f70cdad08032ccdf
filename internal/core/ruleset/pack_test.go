package ruleset

import "testing"

func mustLoad(t *testing.T) *Pack {
	t.Helper()
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return p
}

func TestLoadCompilesAllGroups(t *testing.T) {
	t.Parallel()

	p := mustLoad(t)
	if p.Version != 1 {
		t.Fatalf("Version = %d", p.Version)
	}
	if p.Todo == nil || p.DeadlineKeywords == nil || p.DeadlineDates == nil {
		t.Fatal("expected all three rule groups compiled")
	}
	if len(p.TodoTriggers) == 0 || len(p.KeywordRules) == 0 || len(p.DatePatternRules) == 0 {
		t.Fatal("raw rule lists should be retained")
	}
}

func TestTodoTriggerMatching(t *testing.T) {
	t.Parallel()

	p := mustLoad(t)
	cases := []struct {
		in   string
		want bool
	}{
		{"This is a critical action item.", true},
		{"Can you send the file?", true},
		{"Task: investigate the issue.", true},
		{"To do: refill the coffee machine.", true},
		{"Let's aim to finish by Friday.", true},
		{"We need to ensure that all bugs are fixed.", true},
		{"Kindly address the findings.", true},
		{"I am good at multitasking.", false},
		{"The subtask list is long.", false},
		{"Nothing actionable here.", false},
	}
	for _, c := range cases {
		if got := p.Todo.MatchString(c.in); got != c.want {
			t.Errorf("Todo.MatchString(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTodoTriggerIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	p := mustLoad(t)
	for _, s := range []string{"ACTION ITEM", "action item", "Action Item"} {
		if !p.Todo.MatchString(s) {
			t.Errorf("Todo should match %q", s)
		}
	}
}

func TestDeadlineKeywordMatching(t *testing.T) {
	t.Parallel()

	p := mustLoad(t)
	cases := []struct {
		in   string
		want bool
	}{
		{"The report is due by Friday.", true},
		{"The deadline is next Wednesday.", true},
		{"Please complete the report by EOD.", true},
		{"Wrap this up by COB today.", true},
		{"Reply by close of business.", true},
		{"Have it ready by tomorrow.", true},
		{"Submit by 1st of August.", true},
		{"Finish within 10 days.", true},
		{"Respond in the next 48 hours.", true},
		{"This needs a reply ASAP.", true},
		{"Action Required: confirm attendance.", true},
		{"There is a strict deadline on this.", true},
		{"by Monday works for me", true},
		{"The holiday is in December.", false},
		{"We talked about deadlines in general.", false},
	}
	for _, c := range cases {
		if got := p.DeadlineKeywords.MatchString(c.in); got != c.want {
			t.Errorf("DeadlineKeywords.MatchString(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDeadlineDateMatching(t *testing.T) {
	t.Parallel()

	p := mustLoad(t)
	cases := []struct {
		in   string
		want bool
	}{
		{"The client expects a response by 2024-09-30.", true},
		{"Ship by 12/25 at the latest.", true},
		{"Ship by 12/25/2023 at the latest.", true},
		{"We present on March 15th.", true},
		{"Everything must land before April 2.", true},
		{"No dates mentioned here.", false},
	}
	for _, c := range cases {
		if got := p.DeadlineDates.MatchString(c.in); got != c.want {
			t.Errorf("DeadlineDates.MatchString(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestBoundedPunctuationTail(t *testing.T) {
	t.Parallel()

	// a trigger ending in a word char must not match inside a longer word
	p := mustLoad(t)
	if p.Todo.MatchString("canyoned rivers are deep") {
		t.Fatal("\"can you\" must not match inside \"canyoned\"")
	}
	// but a trigger ending in punctuation matches when followed by whitespace
	if !p.Todo.MatchString("task: review the numbers") {
		t.Fatal("\"task:\" should match before whitespace")
	}
}
