package datum

import (
	"github.com/tidepool-org/medical-data/errors"
)

type Carbohydrate struct {
	Net   float64 `json:"net"`
	Units string  `json:"units"`
}

type Nutrition struct {
	Carbohydrate Carbohydrate `json:"carbohydrate"`
}

type Meal struct {
	Base
	Meal                string     `json:"meal,omitempty"`
	Nutrition           Nutrition  `json:"nutrition"`
	PrescribedNutrition *Nutrition `json:"prescribedNutrition,omitempty"`
	Prescriptor         string     `json:"prescriptor,omitempty"`
}

func NormalizeMeal(raw Raw, opts *Options) (*Meal, error) {
	base, err := normalizeBase(raw, opts, TypeMeal)
	if err != nil {
		return nil, err
	}

	nutrition, err := parseNutrition(raw, "nutrition")
	if err != nil {
		return nil, err
	}
	meal := &Meal{
		Base:        base,
		Meal:        raw.StringOr("meal", ""),
		Nutrition:   *nutrition,
		Prescriptor: raw.StringOr("prescriptor", ""),
	}
	if _, ok := raw["prescribedNutrition"]; ok {
		if meal.PrescribedNutrition, err = parseNutrition(raw, "prescribedNutrition"); err != nil {
			return nil, err
		}
	}
	return meal, nil
}

func parseNutrition(raw Raw, key string) (*Nutrition, error) {
	payload, ok := raw.Map(key)
	if !ok {
		return nil, errors.New(errors.ErrInvalidNutrition, "Missing or invalid %s in meal", key)
	}
	carbohydrate, ok := payload.Map("carbohydrate")
	if !ok {
		return nil, errors.New(errors.ErrInvalidNutrition, "Missing or invalid %s.carbohydrate in meal", key)
	}
	net, ok := carbohydrate.Float("net")
	if !ok {
		return nil, errors.New(errors.ErrInvalidNutrition, "Missing or invalid %s.carbohydrate.net in meal", key)
	}
	return &Nutrition{
		Carbohydrate: Carbohydrate{
			Net:   net,
			Units: carbohydrate.StringOr("units", "grams"),
		},
	}, nil
}
