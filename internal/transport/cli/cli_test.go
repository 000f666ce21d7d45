package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"paysim/internal/domain/payroll"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCompareTable(t *testing.T) {
	out, err := run(t, "compare", "-p", "70")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Pay rate: 70%", "Apprentice pay 2024", "1261.29", "1186.19", "Contribution difference 2025 - 2024: 75.10 €", "-75.10 €"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestCompareCSVWithGrossLevy(t *testing.T) {
	out, err := run(t, "compare", "--percentage", "70", "--format", "csv", "--levy-basis", "gross")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Apprentice pay 2025,1.44,24.87,11.35,3.10,120.20,160.96,1100.33") {
		t.Fatalf("unexpected csv:\n%s", out)
	}
}

func TestCompareJSONAndPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	out, err := run(t, "compare", "-p", "70", "-f", "json", "--pdf", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`"percentage": 70`, `"netMonthly": 1186.19`, `"contributionDelta": 75.1`, `"text": "1186.19 €"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected json to contain %s, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"3.1"`) || strings.Contains(out, `"0"`) {
		t.Fatalf("expected amounts as numbers, got:\n%s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected pdf file: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("expected pdf header")
	}
}

func TestCompareRejectsOutOfRange(t *testing.T) {
	_, err := run(t, "compare", "-p", "120", "--max-percentage", "100")
	if !errors.Is(err, payroll.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := run(t, "compare", "-f", "xml"); err == nil {
		t.Fatal("expected unknown format to fail")
	}
}

func TestRegimes(t *testing.T) {
	out, err := run(t, "regimes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"key": "2025"`) || !strings.Contains(out, `"social_levy"`) || !strings.Contains(out, `"thresholdHourly": 9.3852`) {
		t.Fatalf("unexpected regimes output:\n%s", out)
	}
}

func TestComputeSingleRegime(t *testing.T) {
	out, err := run(t, "compute", "--regime", "2024", "-p", "80")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Pay rate: 80% of the reference wage, 2024 rules", "Apprentice pay 2024", "2.03", "1439.44"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Apprentice pay 2025") {
		t.Fatalf("expected a single regime row, got:\n%s", out)
	}

	out, err = run(t, "compute", "-r", "2025", "-p", "70", "-f", "json", "--levy-basis", "gross")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"social_levy": 120.2`) || !strings.Contains(out, `"netMonthly": 1100.33`) {
		t.Fatalf("unexpected json:\n%s", out)
	}

	if _, err := run(t, "compute", "--regime", "1999"); !errors.Is(err, payroll.ErrUnknownRegime) {
		t.Fatalf("expected ErrUnknownRegime, got %v", err)
	}
}

func TestLegacyRange(t *testing.T) {
	if _, err := run(t, "compare", "-p", "120", "--legacy-range"); !errors.Is(err, payroll.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput above the legacy ceiling, got %v", err)
	}
	if _, err := run(t, "compute", "-p", "100", "--legacy-range"); err != nil {
		t.Fatalf("expected 100 to be accepted, got %v", err)
	}
}
