//go:build unit

package property_test

import (
	"testing"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/property"
	"rental-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, cents int64) money.Money {
	t.Helper()
	m, err := money.FromCents(cents)
	require.NoError(t, err)
	return m
}

func validParams(t *testing.T) property.Params {
	return property.Params{
		Name:          "  Villa Azur ",
		Description:   "Sea view",
		Capacity:      4,
		PricePerNight: price(t, 15000),
		Images:        []string{" https://img/1.jpg ", "", "https://img/2.jpg"},
		Amenities:     []string{"wifi", "  "},
	}
}

func TestNewProperty(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		p, err := property.NewProperty(validParams(t))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, "Villa Azur", p.Name())
		assert.True(t, p.IsAvailable(), "available by default")
		assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, p.Images())
		assert.Equal(t, []string{"wifi"}, p.Amenities())
	})

	t.Run("公開フラグ指定", func(t *testing.T) {
		params := validParams(t)
		off := false
		params.IsAvailable = &off
		p, err := property.NewProperty(params)
		require.NoError(t, err)
		assert.False(t, p.IsAvailable())
	})

	cases := []struct {
		name   string
		mutate func(*property.Params)
		errIs  error
	}{
		{name: "名前空NG", mutate: func(p *property.Params) { p.Name = "   " }, errIs: property.ErrNameRequired},
		{name: "説明空NG", mutate: func(p *property.Params) { p.Description = "" }, errIs: property.ErrDescriptionRequired},
		{name: "定員0NG", mutate: func(p *property.Params) { p.Capacity = 0 }, errIs: property.ErrInvalidCapacity},
		{name: "価格0NG", mutate: func(p *property.Params) { p.PricePerNight = money.Money{} }, errIs: property.ErrInvalidPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams(t)
			tc.mutate(&params)
			_, err := property.NewProperty(params)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestProperty_Apply(t *testing.T) {
	t.Run("指定したフィールドのみ更新", func(t *testing.T) {
		p := builder.NewPropertyBuilder().BuildDomain()
		before := *p
		name := "Villa Bleu"
		newPrice := price(t, 25000)
		images := []string{}

		require.NoError(t, p.Apply(property.Patch{Name: &name, PricePerNight: &newPrice, Images: &images}))

		assert.Equal(t, "Villa Bleu", p.Name())
		assert.Equal(t, int64(25000), p.PricePerNight().Cents())
		assert.Empty(t, p.Images())
		assert.Equal(t, before.Description(), p.Description())
		assert.Equal(t, before.Capacity(), p.Capacity())
		assert.Equal(t, before.Amenities(), p.Amenities())
	})

	t.Run("空のパッチは変更なし", func(t *testing.T) {
		p := builder.NewPropertyBuilder().BuildDomain()
		before := *p
		require.NoError(t, p.Apply(property.Patch{}))
		if diff := cmp.Diff(&before, p, cmp.AllowUnexported(property.Property{}), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Property mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("検証エラー時は変更なし", func(t *testing.T) {
		p := builder.NewPropertyBuilder().BuildDomain()
		name := "Renamed"
		zero := 0
		err := p.Apply(property.Patch{Name: &name, Capacity: &zero})
		require.ErrorIs(t, err, property.ErrInvalidCapacity)
		assert.Equal(t, "Villa Azur", p.Name())
		assert.Equal(t, 6, p.Capacity())
	})
}

func TestProperty_Fits(t *testing.T) {
	p := builder.NewPropertyBuilder().WithCapacity(4).BuildDomain()
	assert.True(t, p.Fits(1))
	assert.True(t, p.Fits(4))
	assert.False(t, p.Fits(5))
	assert.False(t, p.Fits(0))
}
