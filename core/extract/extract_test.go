package extract

import "testing"

func TestSkills_VocabularyHits(t *testing.T) {
	text := "Looking for a Python developer with Django and PostgreSQL experience. Docker a plus."

	got := Skills(text)

	want := map[string]bool{"python": true, "django": true, "postgresql": true, "docker": true}
	if len(got) != len(want) {
		t.Fatalf("Skills = %v, want %d hits", got, len(want))
	}
	for _, skill := range got {
		if !want[skill] {
			t.Errorf("unexpected skill %q", skill)
		}
	}
}

func TestSkills_DistinctPerRecord(t *testing.T) {
	got := Skills("python python python")

	if len(got) != 1 {
		t.Errorf("Skills = %v, want one distinct hit per record", got)
	}
}

func TestSkills_SymbolNames(t *testing.T) {
	got := Skills("We use C++ and C# on the backend, node.js on the frontend")

	want := map[string]bool{"c++": true, "c#": true, "node.js": true}
	for _, skill := range got {
		if !want[skill] {
			t.Errorf("unexpected skill %q", skill)
		}
		delete(want, skill)
	}
	if len(want) != 0 {
		t.Errorf("missing skills: %v", want)
	}
}

func TestSkills_NoFalseSubstringHits(t *testing.T) {
	// "go" must not match inside "going" or "category".
	got := Skills("We are going to expand the category pages")

	for _, skill := range got {
		if skill == "go" {
			t.Error("Skills matched 'go' inside unrelated words")
		}
	}
}

func TestHourlyRate_DollarSlash(t *testing.T) {
	rate, ok := HourlyRate("Budget: $45/hr, long term")

	if !ok || rate != 45 {
		t.Errorf("HourlyRate = %v, %v; want 45, true", rate, ok)
	}
}

func TestHourlyRate_PerHour(t *testing.T) {
	rate, ok := HourlyRate("Paying 60 per hour for senior engineers")

	if !ok || rate != 60 {
		t.Errorf("HourlyRate = %v, %v; want 60, true", rate, ok)
	}
}

func TestHourlyRate_FirstMatchWins(t *testing.T) {
	rate, ok := HourlyRate("rate $30/hr (was $50/hr last year)")

	if !ok || rate != 30 {
		t.Errorf("HourlyRate = %v, %v; want the first match 30", rate, ok)
	}
}

func TestHourlyRate_Fractional(t *testing.T) {
	rate, ok := HourlyRate("$37.50/hour")

	if !ok || rate != 37.5 {
		t.Errorf("HourlyRate = %v, %v; want 37.5, true", rate, ok)
	}
}

func TestHourlyRate_NoMatch(t *testing.T) {
	if _, ok := HourlyRate("fixed price project, $500 total"); ok {
		t.Error("HourlyRate should not match fixed-price amounts")
	}
}

func TestOccurrences(t *testing.T) {
	if got := Occurrences("Python is great. I love python!", "Python"); got != 2 {
		t.Errorf("Occurrences = %d, want 2", got)
	}
	if got := Occurrences("anything", ""); got != 0 {
		t.Errorf("Occurrences with empty keyword = %d, want 0", got)
	}
}

func TestStripHTML(t *testing.T) {
	fragment := `<p>Switching to <b>Rust</b> was easy</p><script>var x = "hidden";</script>`

	got := StripHTML(fragment)

	if got != "Switching to Rust was easy" {
		t.Errorf("StripHTML = %q", got)
	}
}

func TestStripHTML_Entities(t *testing.T) {
	got := StripHTML("<p>C++ &amp; Go</p>")

	if got != "C++ & Go" {
		t.Errorf("StripHTML = %q, want entities decoded", got)
	}
}

func TestStripHTML_PlainText(t *testing.T) {
	got := StripHTML("no markup here")

	if got != "no markup here" {
		t.Errorf("StripHTML = %q", got)
	}
}
