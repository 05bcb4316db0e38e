package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefineNameAnchor(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		partial string
		want    string
	}{
		{
			name:    "dob anchor recovers full name",
			lines:   []string{"Government of India", "Ravi Kumar Sharma", "DOB: 15/08/1991"},
			partial: "Ravi Kumar",
			want:    "Ravi Kumar Sharma",
		},
		{
			name:    "year of birth marker",
			lines:   []string{"Meena Devi", "Year of Birth: 1975"},
			partial: "Meena",
			want:    "Meena Devi",
		},
		{
			name:    "candidate without partial is rejected",
			lines:   []string{"Unique Identification Authority", "DOB: 15/08/1991"},
			partial: "Ravi Kumar",
			want:    "Ravi Kumar",
		},
		{
			name:    "case-insensitive containment",
			lines:   []string{"RAVI KUMAR SHARMA", "DOB: 15/08/1991"},
			partial: "ravi kumar",
			want:    "RAVI KUMAR SHARMA",
		},
		{
			name:    "marker on first line has no preceding candidate",
			lines:   []string{"DOB: 15/08/1991", "Ravi Kumar"},
			partial: "Ravi Kumar",
			want:    "Ravi Kumar",
		},
		{
			name:    "no marker",
			lines:   []string{"Government of India", "Ravi Kumar"},
			partial: "Ravi Kumar",
			want:    "Ravi Kumar",
		},
		{
			name:    "empty partial unchanged",
			lines:   []string{"Ravi Kumar", "DOB: 15/08/1991"},
			partial: "",
			want:    "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, refineNameAnchor(tc.lines, tc.partial))
		})
	}
}
