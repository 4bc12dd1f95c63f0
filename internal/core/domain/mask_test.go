package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dose/internal/core/domain"
)

func TestMask_FillRect(t *testing.T) {
	m := domain.NewMask(4, 3)
	m.FillRect(1, 0, 3, 2, 200)

	assert.EqualValues(t, 0, m.At(0, 0))
	assert.EqualValues(t, 200, m.At(1, 0))
	assert.EqualValues(t, 200, m.At(2, 1))
	assert.EqualValues(t, 0, m.At(3, 1))
	assert.EqualValues(t, 0, m.At(1, 2))
}

func TestMask_Union(t *testing.T) {
	a := domain.NewMask(3, 1)
	a.Set(0, 0, 100)
	a.Set(1, 0, 50)
	b := domain.NewMask(3, 1)
	b.Set(1, 0, 200)
	b.Set(2, 0, 10)

	u := a.Union(b)

	assert.EqualValues(t, 100, u.At(0, 0))
	assert.EqualValues(t, 200, u.At(1, 0), "union takes the pixel-wise maximum")
	assert.EqualValues(t, 10, u.At(2, 0))

	// Operands stay untouched.
	assert.EqualValues(t, 50, a.At(1, 0))
	assert.EqualValues(t, 0, b.At(0, 0))
}

func TestMask_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b func(*domain.Mask)
		want bool
	}{
		{
			name: "Disjoint Rectangles",
			a:    func(m *domain.Mask) { m.FillRect(0, 0, 2, 2, 255) },
			b:    func(m *domain.Mask) { m.FillRect(2, 2, 4, 4, 255) },
			want: false,
		},
		{
			name: "Single Shared Pixel",
			a:    func(m *domain.Mask) { m.FillRect(0, 0, 3, 3, 255) },
			b:    func(m *domain.Mask) { m.Set(2, 2, 1) },
			want: true,
		},
		{
			name: "Both Empty",
			a:    func(m *domain.Mask) {},
			b:    func(m *domain.Mask) {},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := domain.NewMask(4, 4)
			b := domain.NewMask(4, 4)
			tt.a(a)
			tt.b(b)
			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a))
		})
	}
}

func TestMask_CloneIsIndependent(t *testing.T) {
	m := domain.NewMask(2, 2)
	m.Set(0, 0, 42)

	c := m.Clone()
	require.True(t, c.Equal(m))

	c.Set(0, 0, 7)
	assert.EqualValues(t, 42, m.At(0, 0))
	assert.False(t, c.Equal(m))
}

func TestMask_Equal(t *testing.T) {
	a := domain.NewMask(2, 2)
	b := domain.NewMask(2, 2)
	assert.True(t, a.Equal(b))

	b.Set(1, 1, 1)
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(domain.NewMask(2, 3)))
}
