package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustmentAmount(t *testing.T) {
	assert.Equal(t, 1680.0, Adjustment{Kind: AdjustmentPercentage, Value: 10}.Amount(16800))
	assert.Equal(t, -1680.0, Adjustment{Kind: AdjustmentPercentage, Value: -10}.Amount(16800))
	assert.Equal(t, 2000.0, Adjustment{Kind: AdjustmentFixed, Value: 2000}.Amount(16800))
	assert.Equal(t, -2000.0, Adjustment{Kind: AdjustmentFixed, Value: -2000}.Amount(16800))

	// Kind lạ không điều chỉnh gì
	assert.Equal(t, 0.0, Adjustment{Kind: AdjustmentKind(7), Value: 10}.Amount(16800))
}

func TestAdjustmentValidate(t *testing.T) {
	assert.NoError(t, Adjustment{Kind: AdjustmentPercentage, Value: 100}.Validate())
	assert.NoError(t, Adjustment{Kind: AdjustmentPercentage, Value: -100}.Validate())
	assert.Error(t, Adjustment{Kind: AdjustmentPercentage, Value: 101}.Validate())
	assert.Error(t, Adjustment{Kind: AdjustmentPercentage, Value: -150}.Validate())

	// Fixed không giới hạn biên, kể cả giảm sâu
	assert.NoError(t, Adjustment{Kind: AdjustmentFixed, Value: 999999}.Validate())
	assert.NoError(t, Adjustment{Kind: AdjustmentFixed, Value: -999999}.Validate())

	assert.Error(t, Adjustment{Kind: AdjustmentKind(7), Value: 10}.Validate())
}
