package handler

import (
	"encoding/json"
	"testing"
)

func TestRespond_Serialization(t *testing.T) {
	cases := []struct {
		name string
		env  Envelope
		want string
	}{
		{"data only", Respond("success", map[string]int{"a": 1}, nil), `{"status":"success","data":{"a":1},"errors":null}`},
		{"nil data", Respond("success", nil, nil), `{"status":"success","data":null,"errors":null}`},
		{"string error", Respond("failed get category", nil, "category not found"), `{"status":"failed get category","data":null,"errors":"category not found"}`},
		{"field errors", Respond("data send not valid", nil, []FieldError{{Message: `"title" is required`, Field: "title"}}),
			`{"status":"data send not valid","data":null,"errors":[{"message":"\"title\" is required","field":"title"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.env)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("got  %s\nwant %s", got, tc.want)
			}
		})
	}
}
