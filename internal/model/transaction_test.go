package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want string
	}{
		{
			name: "transfer masks receiver to last four digits",
			tx:   Transaction{Details: Details{ReceiverAccount: "440043******8791"}},
			want: "card *8791",
		},
		{
			name: "short receiver kept whole",
			tx:   Transaction{Details: Details{ReceiverAccount: "123"}},
			want: "card *123",
		},
		{
			name: "purchase shows merchant",
			tx:   Transaction{Details: Details{Merchant: "MAGNUM CASH&CARRY"}},
			want: "MAGNUM CASH&CARRY",
		},
		{
			name: "receiver wins over merchant",
			tx:   Transaction{Details: Details{ReceiverAccount: "524821******1234", Merchant: "ignored"}},
			want: "card *1234",
		},
		{
			name: "nothing to show",
			tx:   Transaction{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tx.DisplayLabel())
		})
	}
}

func TestHasMCC(t *testing.T) {
	assert.True(t, Transaction{MCC: "5411"}.HasMCC())
	assert.False(t, Transaction{}.HasMCC())
}
