package engine

// Validate checks one activity record for structural problems that no
// calculator could recover from.
func Validate(index int, a Activity) error {
	if a.Quantity <= 0 {
		return &ValidationError{Index: index, Field: "quantity", Msg: "must be greater than zero"}
	}
	if a.Unit == "" {
		return &ValidationError{Index: index, Field: "unit", Msg: "is required"}
	}

	switch a.Scope {
	case Scope1, Scope2, Scope3:
	default:
		return &ValidationError{Index: index, Field: "scope",
			Msg: "must be one of scope_1, scope_2, scope_3"}
	}

	switch a.Scope1Category {
	case "", StationaryCombustion, MobileCombustion, FugitiveEmissions, ProcessEmissions:
	default:
		return &ValidationError{Index: index, Field: "scope1_category",
			Msg: "unrecognized category " + string(a.Scope1Category)}
	}

	switch a.Scope2Method {
	case "", LocationBased, MarketBased:
	default:
		return &ValidationError{Index: index, Field: "scope2_method",
			Msg: "must be location_based or market_based"}
	}

	if a.Scope3Category != 0 && (a.Scope3Category < 1 || a.Scope3Category > 15) {
		return &ValidationError{Index: index, Field: "scope3_category",
			Msg: "must be between 1 and 15"}
	}

	return nil
}

// ValidateAll fails fast on the first malformed activity. Malformed
// input is a caller bug, so the whole batch is rejected rather than
// partially calculated.
func ValidateAll(activities []Activity) error {
	for i, a := range activities {
		if err := Validate(i, a); err != nil {
			return err
		}
	}
	return nil
}
