package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowbooks/glow/internal/model"
)

func testRevenue(id string, date model.Date, amount float64) model.Revenue {
	return model.Revenue{
		ID:          id,
		Description: "manicure",
		Amount:      decimal.NewFromFloat(amount),
		Date:        date,
		Method:      model.MethodPix,
		Type:        model.TypeProfessional,
	}
}

func TestFilterMonth(t *testing.T) {
	revenues := []model.Revenue{
		testRevenue("dec", model.NewDate(2023, time.December, 31), 50),
		testRevenue("jan-b", model.NewDate(2024, time.January, 20), 80),
		testRevenue("feb", model.NewDate(2024, time.February, 1), 120),
		testRevenue("jan-a", model.NewDate(2024, time.January, 5), 60),
	}

	got := FilterMonth(revenues, model.YearMonth{Year: 2024, Month: time.January})

	require.Len(t, got, 2)
	assert.Equal(t, "jan-b", got[0].ID, "most recent first")
	assert.Equal(t, "jan-a", got[1].ID)
}

func TestFilterMonth_SameYearDifferentMonth(t *testing.T) {
	revenues := []model.Revenue{
		testRevenue("r1", model.NewDate(2024, time.January, 15), 100),
	}

	assert.Empty(t, FilterMonth(revenues, model.YearMonth{Year: 2024, Month: time.February}))
	assert.Empty(t, FilterMonth(revenues, model.YearMonth{Year: 2023, Month: time.January}))
}

func TestFilterMonth_DoesNotMutateInput(t *testing.T) {
	revenues := []model.Revenue{
		testRevenue("b", model.NewDate(2024, time.January, 20), 80),
		testRevenue("a", model.NewDate(2024, time.January, 5), 60),
	}

	_ = FilterMonth(revenues, model.YearMonth{Year: 2024, Month: time.January})

	assert.Equal(t, "b", revenues[0].ID, "input order must be preserved")
	assert.Equal(t, "a", revenues[1].ID)
}

func TestFilterMonth_StableOnTies(t *testing.T) {
	day := model.NewDate(2024, time.January, 10)
	revenues := []model.Revenue{
		testRevenue("first", day, 10),
		testRevenue("second", day, 20),
		testRevenue("third", day, 30),
	}

	got := FilterMonth(revenues, model.YearMonth{Year: 2024, Month: time.January})

	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
	assert.Equal(t, "third", got[2].ID)
}

func TestSumRevenues(t *testing.T) {
	revenues := []model.Revenue{
		testRevenue("r1", model.NewDate(2024, time.January, 1), 10.5),
		testRevenue("r2", model.NewDate(2024, time.January, 2), 20.25),
	}

	assert.True(t, SumRevenues(revenues).Equal(decimal.NewFromFloat(30.75)))
	assert.True(t, SumRevenues(nil).IsZero())
}

func TestRevenuesOfType(t *testing.T) {
	personal := testRevenue("p", model.NewDate(2024, time.January, 3), 40)
	personal.Type = model.TypePersonal
	revenues := []model.Revenue{
		testRevenue("a", model.NewDate(2024, time.January, 1), 10),
		personal,
		testRevenue("b", model.NewDate(2024, time.January, 5), 20),
	}

	got := RevenuesOfType(revenues, model.TypeProfessional)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}
