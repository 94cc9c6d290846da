package types

import (
	"errors"
	"testing"
)

func mustValue(t *testing.T, raw, vt, ut, pfx any) Value {
	t.Helper()
	v, err := CreateValue(raw, vt, ut, pfx)
	if err != nil {
		t.Fatalf("CreateValue: %v", err)
	}
	return v
}

func TestPropertySetValidate(t *testing.T) {
	text := func(t *testing.T) Value { return mustValue(t, "x", Text, nil, nil) }

	t.Run("valid", func(t *testing.T) {
		s := PropertySet{Name: "Pset_Common", Properties: []Property{
			{Name: "A", Value: text(t)},
			{Name: "B", Value: text(t)},
		}}
		if err := s.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		s := PropertySet{Properties: []Property{{Name: "A", Value: text(t)}}}
		if err := s.Validate(); !errors.Is(err, ErrSetNameEmpty) {
			t.Errorf("Validate() = %v, want ErrSetNameEmpty", err)
		}
	})

	t.Run("duplicate names", func(t *testing.T) {
		s := PropertySet{Name: "P", Properties: []Property{
			{Name: "A", Value: text(t)},
			{Name: "A", Value: text(t)},
		}}
		if err := s.Validate(); !errors.Is(err, ErrDuplicateProperty) {
			t.Errorf("Validate() = %v, want ErrDuplicateProperty", err)
		}
	})
}

func TestQuantitySetValidate(t *testing.T) {
	length := func(t *testing.T) Value { return mustValue(t, 2.0, Real, UnitLength, nil) }

	t.Run("valid", func(t *testing.T) {
		s := QuantitySet{Name: "BaseQuantities", Properties: []Property{
			{Name: "Length", Value: length(t)},
			{Name: "Count", Value: mustValue(t, 3, Integer, UnitCount, nil)},
		}}
		if err := s.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("missing unit", func(t *testing.T) {
		s := QuantitySet{Name: "Q", Properties: []Property{
			{Name: "Length", Value: mustValue(t, 2.0, Real, nil, nil)},
		}}
		if err := s.Validate(); !errors.Is(err, ErrMissingUnitType) {
			t.Errorf("Validate() = %v, want ErrMissingUnitType", err)
		}
	})

	t.Run("non-numeric value", func(t *testing.T) {
		s := QuantitySet{Name: "Q", Properties: []Property{
			{Name: "Length", Value: mustValue(t, "two", Text, UnitLength, nil)},
		}}
		if err := s.Validate(); !errors.Is(err, ErrNonNumericQuantity) {
			t.Errorf("Validate() = %v, want ErrNonNumericQuantity", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		s := QuantitySet{Properties: []Property{{Name: "L", Value: length(t)}}}
		if err := s.Validate(); !errors.Is(err, ErrSetNameEmpty) {
			t.Errorf("Validate() = %v, want ErrSetNameEmpty", err)
		}
	})
}
