package types

import (
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalAndReverse(t *testing.T) {
	natural := Natural[int]()
	assert.Negative(t, natural(1, 2))
	assert.Zero(t, natural(2, 2))
	assert.Positive(t, natural(3, 2))

	reverse := Reverse(natural)
	assert.Positive(t, reverse(1, 2))
	assert.Zero(t, reverse(2, 2))
	assert.Negative(t, reverse(3, 2))

	assert.Negative(t, Natural[string]()("a", "b"))
}

func TestGodsInterop(t *testing.T) {
	fromGods := FromGods[string](utils.StringComparator)
	assert.Negative(t, fromGods("a", "b"))

	m := treemap.NewWith(ToGods(Reverse(Natural[int]())))
	for _, k := range []int{3, 1, 2} {
		m.Put(k, struct{}{})
	}
	assert.Equal(t, []interface{}{3, 2, 1}, m.Keys())
}

type info struct {
	Age   int
	Intro string
}

type employee struct {
	Name     string
	Salary   float64
	SelfInfo info
	Boss     *employee
	Tags     []string
}

func TestByField(t *testing.T) {
	a := employee{Name: "ann", Salary: 400, SelfInfo: info{Age: 30}}
	b := employee{Name: "bob", Salary: 300, SelfInfo: info{Age: 22}, Boss: &a}

	byName, err := ByField[employee]("Name")
	require.NoError(t, err)
	assert.Negative(t, byName(a, b))

	bySalary, err := ByField[employee]("Salary")
	require.NoError(t, err)
	assert.Positive(t, bySalary(a, b))

	byAge, err := ByField[*employee]("SelfInfo.Age")
	require.NoError(t, err)
	assert.Positive(t, byAge(&a, &b))
	assert.Zero(t, byAge(&a, &a))

	byBossName, err := ByField[employee]("Boss.Name")
	require.NoError(t, err)
	assert.Negative(t, byBossName(a, b), "nil pointer sorts first")
	assert.Zero(t, byBossName(a, a))
}

func TestByFieldErrors(t *testing.T) {
	for _, path := range []string{"", "Missing", "Name.Length", "Tags", "SelfInfo"} {
		_, err := ByField[employee](path)
		assert.ErrorIs(t, err, ErrFieldPath, path)
	}
}
