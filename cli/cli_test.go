package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-advantage/models"
)

const housingCSV = `RegionID,State,City,CountyName,MeanValue
1,CA,Fresno,Fresno County,500000
2,CA,Davis,Yolo County,300000
3,TX,Austin,Travis County,200000
`

const salaryCSV = `AREA,PRIM_STATE,OCC_TITLE,TOT_EMP,A_MEAN
1,CA,Engineer,1500,120000
2,TX,Engineer,900,90000
3,TX,Engineering Manager,100,150000
`

type fixture struct {
	housing  string
	salaries string
	dir      string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		housing:  filepath.Join(dir, "PropertyValues.csv"),
		salaries: filepath.Join(dir, "JobSalarys.csv"),
		dir:      dir,
	}
	require.NoError(t, os.WriteFile(f.housing, []byte(housingCSV), 0o644))
	require.NoError(t, os.WriteFile(f.salaries, []byte(salaryCSV), 0o644))
	return f
}

func (f fixture) exec(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))

	base := []string{"--housing", f.housing, "--salaries", f.salaries}
	code := run(root, append(args, base...))
	return out.String(), errOut.String(), code
}

func TestRankWithFlags(t *testing.T) {
	f := newFixture(t)
	report := filepath.Join(f.dir, "out", "ranking.csv")

	out, _, code := f.exec(t, "", "--keyword", "Engineer", "--select", "1", "--state", "CA", "--top", "2", "--report", report)
	require.Equal(t, 0, code)

	assert.Contains(t, out, "1.Engineer\n2.Engineering Manager\n")
	assert.Contains(t, out, "BEST STATES FOR ENGINEER")
	ca := strings.Index(out, "  1    CA")
	tx := strings.Index(out, "  2    TX")
	require.NotEqual(t, -1, ca, out)
	require.NotEqual(t, -1, tx, out)
	assert.Less(t, ca, tx)
	assert.Contains(t, out, "shell  sort time in milliseconds")
	assert.Contains(t, out, "quick  sort time in milliseconds")
	assert.Contains(t, out, "Lowest priced areas in CA")
	assert.Less(t, strings.Index(out, "Davis"), strings.Index(out, "Fresno"))

	body, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(body), "1,Engineer,CA,120000.00,400000.00,106666.67")
}

func TestRankWithPrompts(t *testing.T) {
	f := newFixture(t)

	out, _, code := f.exec(t, "Eng\n7\nabc\n1\n2\n")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Please enter a keyword to search for: ")
	assert.Contains(t, out, "is not between 1 and 2")
	assert.Contains(t, out, "Selected occupation: Engineer")
	assert.Contains(t, out, "Lowest priced areas in TX")
	assert.Contains(t, out, "Austin")
}

func TestRankInvalidSelectionAborts(t *testing.T) {
	f := newFixture(t)

	out, _, code := f.exec(t, "", "--keyword", "Engineer", "--select", "9")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Ranking aborted")
	assert.NotContains(t, out, "BEST STATES")
}

func TestRankPromptsRunOut(t *testing.T) {
	f := newFixture(t)

	out, _, code := f.exec(t, "Engineer\n0\n")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Ranking aborted")
}

func TestRankNoMatchingTitles(t *testing.T) {
	f := newFixture(t)

	out, _, code := f.exec(t, "", "--keyword", "Zookeeper")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `No occupation titles start with "Zookeeper"`)
}

func TestMissingFileExitsNonZero(t *testing.T) {
	f := newFixture(t)
	f.housing = filepath.Join(f.dir, "missing.csv")

	out, errOut, code := f.exec(t, "", "--keyword", "Engineer", "--select", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, models.ErrFileOpen.Error())
	assert.NotContains(t, out, "1.Engineer")
}

func TestTitlesCommand(t *testing.T) {
	f := newFixture(t)

	out, _, code := f.exec(t, "", "titles", "Engineering")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "1.Engineering Manager\n")
	assert.NotContains(t, out, "1.Engineer\n")
}

func TestSortCommand(t *testing.T) {
	f := newFixture(t)
	prom := filepath.Join(f.dir, "run.prom")

	out, _, code := f.exec(t, "", "sort", "--algorithm", "quick", "--metrics-textfile", prom)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Sort timings: housing (3 records)")
	assert.Contains(t, out, "Sort timings: salaries (3 records)")
	assert.NotContains(t, out, "shell  sort time")

	body, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(body), `sort_duration_seconds_count{algorithm="quick",dataset="housing"} 1`)
	assert.Contains(t, string(body), `records_loaded{dataset="salaries"} 3`)
}

func TestSortCommandUnknownAlgorithm(t *testing.T) {
	f := newFixture(t)

	_, errOut, code := f.exec(t, "", "sort", "--algorithm", "bubble")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown sort algorithm")
}

func TestInvalidConfigExitsNonZero(t *testing.T) {
	f := newFixture(t)

	_, errOut, code := f.exec(t, "", "--source", "sqlite", "titles")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "config")
}

func TestPrompterChoose(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("x\n5\n2"), &out, 3)

	n, err := p.Choose("pick: ", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, strings.Count(out.String(), "pick: "))

	_, err = p.Choose("pick: ", 3)
	assert.ErrorIs(t, err, models.ErrInvalidSelection)
}

func TestPrompterLine(t *testing.T) {
	p := NewPrompter(strings.NewReader("  Software Eng  \nlast"), &bytes.Buffer{}, 1)

	line, err := p.Line("? ")
	require.NoError(t, err)
	assert.Equal(t, "Software Eng", line)

	line, err = p.Line("? ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = p.Line("? ")
	assert.Error(t, err)
}
