package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTraitMapPreservesDocumentOrder(t *testing.T) {
	input := `{
		"zeta_hoarding": {"definition": "hoards resources", "sin_weights": {"greed": 0.8}, "complexity_score": 0.4},
		"alpha_rage": {"definition": "explodes at slights", "sin_weights": {"wrath": 0.9}, "complexity_score": 0.2},
		"mid_envy": {"definition": "resents peers", "sin_weights": {"envy": 0.7}, "complexity_score": 0.5}
	}`

	var m TraitMap
	if err := json.Unmarshal([]byte(input), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	keys := m.Keys()
	want := []string{"zeta_hoarding", "alpha_rage", "mid_envy"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("key %d: expected %s, got %s", i, want[i], keys[i])
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(out)
	if !(strings.Index(s, "zeta_hoarding") < strings.Index(s, "alpha_rage") &&
		strings.Index(s, "alpha_rage") < strings.Index(s, "mid_envy")) {
		t.Fatalf("marshal did not preserve insertion order: %s", s)
	}
}

func TestTraitKeepsUnknownFields(t *testing.T) {
	input := `{"definition": "d", "sin_weights": {"pride": 0.5}, "complexity_score": 0.3, "origin_note": "manual import"}`

	var tr Trait
	if err := json.Unmarshal([]byte(input), &tr); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"origin_note":"manual import"`) {
		t.Fatalf("unknown field dropped on round trip: %s", out)
	}
}

func TestTraitWeightDefaultsToZero(t *testing.T) {
	tr := Trait{Definition: "d", SinWeights: map[string]float64{"wrath": 0.6}}
	if tr.Weight("wrath") != 0.6 {
		t.Fatalf("expected 0.6, got %v", tr.Weight("wrath"))
	}
	if tr.Weight("pride") != 0 {
		t.Fatalf("expected missing sin to default to 0, got %v", tr.Weight("pride"))
	}
}

func TestTraitValid(t *testing.T) {
	valid := Trait{Definition: "d", SinWeights: map[string]float64{}}
	if !valid.Valid() {
		t.Fatalf("expected trait with definition and sin_weights to be valid")
	}

	noWeights := Trait{Definition: "d"}
	if noWeights.Valid() {
		t.Fatalf("expected trait without sin_weights to be invalid")
	}

	noDefinition := Trait{SinWeights: map[string]float64{"lust": 0.1}}
	if noDefinition.Valid() {
		t.Fatalf("expected trait without definition to be invalid")
	}
}

func TestTraitMapSetKeepsPositionOnReplace(t *testing.T) {
	var m TraitMap
	m.Set("a", Trait{Definition: "first"})
	m.Set("b", Trait{Definition: "second"})
	m.Set("a", Trait{Definition: "replaced"})

	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected key order after replace: %v", keys)
	}
	got, _ := m.Get("a")
	if got.Definition != "replaced" {
		t.Fatalf("expected replaced value, got %s", got.Definition)
	}
}
