package main

import (
	"bytes"
	"os"
	"testing"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

func TestFixtureUpToDate(t *testing.T) {
	data, err := os.ReadFile("../../pkg/reduce/testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var checkedIn []Scenario
	if err := yaml.Unmarshal(data, &checkedIn); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	generated, err := buildScenarios(tests)
	if err != nil {
		t.Fatal(err)
	}
	if len(generated) != len(checkedIn) {
		t.Fatalf("fixture has %d scenarios, generator has %d; run go run ./cmd/gentests", len(checkedIn), len(generated))
	}

	for i, want := range generated {
		got := checkedIn[i]
		if got.Name != want.Name || got.Input != want.Input || got.MaxSteps != want.MaxSteps ||
			got.FinalOnly != want.FinalOnly || got.Status != want.Status || got.Final != want.Final ||
			!slices.Equal(got.After, want.After) {
			t.Errorf("scenario %d is stale:\nfixture:   %+v\ngenerated: %+v", i, got, want)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	scenarios, err := buildScenarios(tests[:3])
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := encode(&buf, scenarios); err != nil {
		t.Fatal(err)
	}
	var decoded []Scenario
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(decoded) != 3 || decoded[2].Final != "Hello" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestBuildScenariosRejectsBadInput(t *testing.T) {
	_, err := buildScenarios([]TestCase{{Name: "broken", Input: "(λx.x"}})
	if err == nil {
		t.Fatal("expected a parse error")
	}
}
