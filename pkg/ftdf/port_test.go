package ftdf

import (
	"reflect"
	"testing"
)

func testPortIndex() map[string]*Port {
	return map[string]*Port{
		"HONDO": {
			PrimaryIdentifier: "HONDO",
			TerminalRefs:      []string{"HONDO_SHICHIRUI", "HONDO_SAKAIMINATO"},
		},
		"HONDO_SHICHIRUI":   {PrimaryIdentifier: "HONDO_SHICHIRUI"},
		"HONDO_SAKAIMINATO": {PrimaryIdentifier: "HONDO_SAKAIMINATO"},
		"SAIGO":             {PrimaryIdentifier: "SAIGO"},
	}
}

func TestResolvePortRefs(t *testing.T) {
	ports := testPortIndex()

	testCases := []struct {
		name     string
		code     string
		expected []string
	}{
		{name: "group expands in preference order", code: "HONDO", expected: []string{"HONDO_SHICHIRUI", "HONDO_SAKAIMINATO"}},
		{name: "plain port resolves to itself", code: "SAIGO", expected: []string{"SAIGO"}},
		{name: "terminal stays concrete", code: "HONDO_SAKAIMINATO", expected: []string{"HONDO_SAKAIMINATO"}},
		{name: "unknown code passes through", code: "NOWHERE", expected: []string{"NOWHERE"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := ResolvePortRefs(testCase.code, ports)

			if !reflect.DeepEqual(got, testCase.expected) {
				t.Errorf("expected %v, got %v", testCase.expected, got)
			}
		})
	}
}

func TestPortIsGroup(t *testing.T) {
	ports := testPortIndex()

	if !ports["HONDO"].IsGroup() {
		t.Error("HONDO should be a group port")
	}
	if ports["SAIGO"].IsGroup() {
		t.Error("SAIGO should not be a group port")
	}
}
