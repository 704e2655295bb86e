package ofx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	available := 950.0
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		want      string
		statement Statement
	}{
		{
			name: "bank statement",
			statement: Statement{
				Kind:        KindBank,
				AccountID:   "1234567890",
				AccountType: "CHECKING",
				Currency:    "USD",
				Start:       start,
				End:         end,
				Balance:     1000,
				Available:   &available,
				Transactions: []Transaction{
					{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Description: "STARBUCKS", Amount: -25.5},
				},
			},
			want: "Account Statement\n" +
				"Account Type: Checking\n" +
				"Account Number: 1234567890\n" +
				"Statement Period: 01/01/2024 - 31/01/2024\n" +
				"Closing Balance: 1000.00 USD\n" +
				"Available Balance: 950.00 USD\n" +
				"Number of Transactions: 1\n" +
				"Transaction Details\n" +
				"Jan 15, 2024 STARBUCKS -25.50 USD\n",
		},
		{
			name: "credit card masks number",
			statement: Statement{
				Kind:      KindCreditCard,
				AccountID: "4111111111111111",
				Balance:   -500,
			},
			want: "Credit Card Statement\n" +
				"Card Number: ****-****-****-1111\n" +
				"New Balance: -500.00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.statement))
		})
	}
}

func TestRenderAll(t *testing.T) {
	out := RenderAll([]Statement{
		{Kind: KindBank, AccountID: "1"},
		{Kind: KindBank, AccountID: "2"},
	})
	assert.Equal(t, "Account Statement\nAccount Number: 1\nClosing Balance: 0.00\n\n"+
		"Account Statement\nAccount Number: 2\nClosing Balance: 0.00\n", out)
}
