package engine

import "testing"

func TestCityMatch(t *testing.T) {
	cases := []struct {
		location string
		cities   []string
		want     bool
	}{
		{"Mumbai, Maharashtra, India", []string{"Mumbai"}, true},
		{"MUMBAI", []string{"mumbai"}, true},
		{"Navi Mumbai", []string{"Mumbai"}, true},
		{"Delhi", []string{"Mumbai"}, false},
		{"Delhi", []string{"Mumbai", "Delhi"}, true},
		{"", []string{"Mumbai"}, false},
		{"Mumbai", nil, false},
		{"Mumbai", []string{"  "}, false},
	}

	for _, tc := range cases {
		if got := CityMatch(tc.location, tc.cities); got != tc.want {
			t.Errorf("CityMatch(%q, %v) = %v, want %v", tc.location, tc.cities, got, tc.want)
		}
	}
}
