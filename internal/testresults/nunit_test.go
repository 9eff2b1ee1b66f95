package testresults

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexbrand/livingdoc/internal/model"
)

const nunitXML = `<?xml version="1.0" encoding="utf-8"?>
<test-run id="2" testcasecount="4" result="Failed">
  <test-suite type="Assembly" name="Cucumbers.Specs.dll" result="Failed">
    <test-suite type="TestSuite" name="Features" result="Failed">
      <test-suite type="TestFixture" name="EatingCucumbersFeature" result="Failed">
        <properties>
          <property name="Description" value="Eating cucumbers" />
        </properties>
        <test-case name="EatFiveOutOfTwelve" result="Passed">
          <properties>
            <property name="Description" value="Eat 5 out of 12" />
          </properties>
        </test-case>
        <test-suite type="ParameterizedMethod" name="EatingCucumbers" result="Failed">
          <properties>
            <property name="Description" value="Eating Cucumbers" />
          </properties>
          <test-case name="EatingCucumbers(&quot;12&quot;,&quot;5&quot;,&quot;7&quot;,null)" result="Passed" />
          <test-case name="EatingCucumbers(&quot;20&quot;,&quot;5&quot;,&quot;15&quot;,null)" result="Failed" />
          <test-case name="EatingCucumbers(&quot;$100&quot;,&quot;0&quot;,&quot;$100&quot;,null)" result="Passed" />
        </test-suite>
      </test-suite>
    </test-suite>
  </test-suite>
</test-run>`

func nunitFeature() (*model.Feature, *model.Scenario, *model.ScenarioOutline) {
	f := &model.Feature{Name: "Eating cucumbers"}
	s := &model.Scenario{Name: "Eat 5 out of 12"}
	o := &model.ScenarioOutline{
		Scenario: model.Scenario{Name: "Eating Cucumbers"},
		Examples: []*model.Examples{{
			Header: []string{"start", "eat", "left"},
			Rows: [][]string{
				{"12", "5", "7"},
				{"20", "5", "15"},
				{"$100", "0", "$100"},
				{"1", "1", "0"},
			},
		}},
	}
	f.AddElement(s)
	f.AddElement(o)
	return f, s, o
}

func loadNUnit(t *testing.T) *NUnitResults {
	t.Helper()
	n := &NUnitResults{}
	require.NoError(t, n.Load(strings.NewReader(nunitXML)))
	return n
}

func TestNUnitResults(t *testing.T) {
	n := loadNUnit(t)
	f, s, o := nunitFeature()

	assert.Equal(t, "nunit3", n.Name())
	assert.Equal(t, Failed, n.FeatureResult(f))
	assert.Equal(t, Passed, n.ScenarioResult(s))
	assert.Equal(t, Failed, n.ScenarioOutlineResult(o))
	assert.Equal(t, Failed, ElementResult(n, o))
}

func TestNUnitResults_ExampleRows(t *testing.T) {
	n := loadNUnit(t)
	_, _, o := nunitFeature()
	rows := o.Examples[0].Rows

	tests := []struct {
		name string
		row  []string
		want Result
	}{
		{"passed row", rows[0], Passed},
		{"failed row", rows[1], Failed},
		{"dollar values", rows[2], Passed},
		{"row without a test case", rows[3], Inconclusive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.ExampleResult(o, tt.row))
		})
	}
}

func TestNUnitResults_UnknownFeature(t *testing.T) {
	n := loadNUnit(t)
	f := &model.Feature{Name: "Something else"}
	s := &model.Scenario{Name: "Eat 5 out of 12"}
	f.AddElement(s)

	assert.Equal(t, Inconclusive, n.FeatureResult(f))
	assert.Equal(t, Inconclusive, n.ScenarioResult(s))
	assert.Equal(t, Inconclusive, n.ScenarioResult(nil))
}

func TestNUnitResults_DetachedScenarioSearchesAllFixtures(t *testing.T) {
	n := loadNUnit(t)
	assert.Equal(t, Passed, n.ScenarioResult(&model.Scenario{Name: "Eat 5 out of 12"}))
}

func TestNUnitResults_InvalidXML(t *testing.T) {
	n := &NUnitResults{}
	assert.Error(t, n.Load(strings.NewReader("<test-run><oops")))
}

func TestOpen_NUnitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TestResult.xml")
	require.NoError(t, os.WriteFile(path, []byte(nunitXML), 0644))

	p, err := Open("nunit3", []string{path})
	require.NoError(t, err)

	_, s, _ := nunitFeature()
	assert.Equal(t, Passed, p.ScenarioResult(s))
}
