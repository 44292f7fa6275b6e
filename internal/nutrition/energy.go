package nutrition

import (
	"fmt"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

const (
	fatLossEnergyFactor = 0.80
	surplusEnergyFactor = 1.10
	minKcalFemale       = 1200
	minKcalMale         = 1500
)

// BMR estimates basal metabolic rate with the revised Harris-Benedict equation.
func BMR(weightKg, heightCm float64, age int, gender domain.Gender) float64 {
	a := float64(age)
	if gender == domain.GenderFemale {
		return 655 + 9.6*weightKg + 1.8*heightCm - 4.7*a
	}
	return 66 + 13.7*weightKg + 5*heightCm - 6.8*a
}

// ActivityFactor maps training load onto the standard activity multipliers.
func ActivityFactor(load float64) float64 {
	switch {
	case load < 0.5:
		return 1.2
	case load < 1.5:
		return 1.375
	case load < 3.0:
		return 1.55
	case load < 4.5:
		return 1.725
	default:
		return 1.9
	}
}

// ActivityLevel names an activity factor for display.
func ActivityLevel(factor float64) string {
	switch {
	case factor <= 1.2:
		return "Sedentary"
	case factor <= 1.375:
		return "Lightly Active"
	case factor <= 1.55:
		return "Moderately Active"
	case factor <= 1.725:
		return "Very Active"
	default:
		return "Extremely Active"
	}
}

// MinimumCalories is the safety floor applied to fat-loss targets.
func MinimumCalories(gender domain.Gender) int {
	if gender == domain.GenderFemale {
		return minKcalFemale
	}
	return minKcalMale
}

type energyPlan struct {
	Target         int
	DeficitPercent int
	Floored        bool
}

// energyTarget applies the goal's deficit or surplus to TDEE. Fat-loss
// targets never drop below the gender floor; when the floor binds, the
// deficit is recomputed from it.
func energyTarget(tdee int, goal domain.Goal, gender domain.Gender) energyPlan {
	switch {
	case goal.IsFatLoss():
		plan := energyPlan{
			Target:         domain.RoundHalfUp(float64(tdee) * fatLossEnergyFactor),
			DeficitPercent: 20,
		}
		if floor := MinimumCalories(gender); plan.Target < floor {
			plan.Target = floor
			plan.DeficitPercent = domain.RoundHalfUp(float64(tdee-floor) / float64(tdee) * 100)
			plan.Floored = true
		}
		return plan
	case goal.IsSurplus():
		return energyPlan{
			Target:         domain.RoundHalfUp(float64(tdee) * surplusEnergyFactor),
			DeficitPercent: -10,
		}
	default:
		return energyPlan{Target: tdee}
	}
}

func calorieRationale(bmr float64, tdee int, af float64, goal domain.Goal, gender domain.Gender, plan energyPlan) string {
	s := fmt.Sprintf("BMR %d kcal × %s (%s) = TDEE %d kcal. ", domain.RoundHalfUp(bmr), trimFloat(af), ActivityLevel(af), tdee)
	switch {
	case goal.IsFatLoss() && plan.Floored:
		s += fmt.Sprintf("A 20%% deficit would fall below the %d kcal safety minimum for %ss, so the target is held at the minimum.",
			MinimumCalories(gender), gender)
	case goal.IsFatLoss():
		s += fmt.Sprintf("Fat loss: %d%% deficit = %d kcal, about 0.5-1%% bodyweight per week while protecting muscle (ACSM2016).",
			plan.DeficitPercent, plan.Target)
	case goal.IsSurplus():
		s += fmt.Sprintf("Muscle gain: 10%% surplus = %d kcal for hypertrophy and recovery (ISSN2017).", plan.Target)
	default:
		s += "Maintenance energy to support the current training load."
	}
	return s
}
