package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceTable(t *testing.T) {
	tests := []struct {
		name     string
		dataset  Dataset
		expected string
		resolved bool
	}{
		{
			name:     "direct source field wins",
			dataset:  Dataset{Source: "main.sales.orders", QueryLines: []string{"SELECT 1 FROM elsewhere"}},
			expected: "main.sales.orders",
			resolved: true,
		},
		{
			name:     "from clause in query lines",
			dataset:  Dataset{QueryLines: []string{"SELECT * ", "FROM main.sales.orders"}},
			expected: "main.sales.orders",
			resolved: true,
		},
		{
			name:     "lowercase from",
			dataset:  Dataset{QueryLines: []string{"select * from analytics.events"}},
			expected: "analytics.events",
			resolved: true,
		},
		{
			name:     "backticked table name",
			dataset:  Dataset{QueryLines: []string{"SELECT * FROM `main`.`sales`.`orders`"}},
			expected: "main.sales.orders",
			resolved: true,
		},
		{
			name:     "unqualified table",
			dataset:  Dataset{QueryLines: []string{"SELECT * FROM orders"}},
			expected: "orders",
			resolved: true,
		},
		{
			name:     "no from clause",
			dataset:  Dataset{QueryLines: []string{"-- scratch"}},
			resolved: false,
		},
		{
			name:     "no source at all",
			dataset:  Dataset{Name: "empty"},
			resolved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, ok := tt.dataset.SourceTable()
			assert.Equal(t, tt.resolved, ok)
			assert.Equal(t, tt.expected, table)
		})
	}
}
