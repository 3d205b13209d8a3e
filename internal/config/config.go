package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Database   Database   `koanf:"db"`
	Advice     Advice     `koanf:"advice"`
	Benchmarks Benchmarks `koanf:"benchmarks"`
}

type Database struct {
	Path string `koanf:"path"`
}

type Advice struct {
	Model string `koanf:"model"`
	// Smlv is the Colombian monthly minimum wage used to express income in
	// SMLV units inside advice prompts. Display context only, never scoring.
	Smlv               float64 `koanf:"smlv"`
	TransportAllowance float64 `koanf:"transportallowance"`
}

// Benchmarks holds every product constant the calculators depend on. They
// encode business assumptions, not algorithm shape, so all of them are
// overridable through configuration.
type Benchmarks struct {
	// NeedsCategories lists the expense categories counted as "Needs" in the
	// 50/30/20 partition. Anything else is a "Want".
	NeedsCategories []string `koanf:"needscategories"`
	// FoodCategories is the benchmark group for the food-spend comparison.
	FoodCategories []string `koanf:"foodcategories"`

	SavingsRateTarget  float64 `koanf:"savingsratetarget"`
	StabilityThreshold float64 `koanf:"stabilitythreshold"`
	ControlThreshold   float64 `koanf:"controlthreshold"`

	// Alert rules key on a single category each; the keys live here so a
	// deployment that renames its taxonomy can follow along.
	HousingAlertCategory string  `koanf:"housingalertcategory"`
	HousingAlertRatio    float64 `koanf:"housingalertratio"`
	DebtAlertCategory    string  `koanf:"debtalertcategory"`
	DebtAlertRatio       float64 `koanf:"debtalertratio"`
	FoodAlertCategory    string  `koanf:"foodalertcategory"`
	FoodAlertRatio       float64 `koanf:"foodalertratio"`
	WantsAlertRatio      float64 `koanf:"wantsalertratio"`

	AvgSavingsRate         float64 `koanf:"avgsavingsrate"`
	AvgSavingsRateColombia float64 `koanf:"avgsavingsratecolombia"`
	AvgFoodRatio           float64 `koanf:"avgfoodratio"`
	AvgFoodRatioColombia   float64 `koanf:"avgfoodratiocolombia"`
	PercentileSlope        float64 `koanf:"percentileslope"`

	GoalDepositFraction          float64 `koanf:"goaldepositfraction"`
	GoalMonthlyContribution      float64 `koanf:"goalmonthlycontribution"`
	GoalMonthlyContributionEmpty float64 `koanf:"goalmonthlycontributionempty"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Database: Database{
			Path: "budgetmate.db",
		},
		Advice: Advice{
			Model:              "gemini-2.5-flash",
			Smlv:               1300000,
			TransportAllowance: 162000,
		},
		Benchmarks: Benchmarks{
			NeedsCategories: []string{"Housing", "Groceries", "Transport", "Utilities", "Health", "Education", "Debt"},
			FoodCategories:  []string{"Groceries", "Dining Out", "Leisure"},

			SavingsRateTarget:  0.20,
			StabilityThreshold: 0.90,
			ControlThreshold:   0.30,

			HousingAlertCategory: "Housing",
			HousingAlertRatio:    0.35,
			DebtAlertCategory:    "Debt",
			DebtAlertRatio:       0.30,
			FoodAlertCategory:    "Groceries",
			FoodAlertRatio:       0.20,
			WantsAlertRatio:      0.35,

			AvgSavingsRate:         0.08,
			AvgSavingsRateColombia: 0.05,
			AvgFoodRatio:           0.25,
			AvgFoodRatioColombia:   0.35,
			PercentileSlope:        150,

			GoalDepositFraction:          0.10,
			GoalMonthlyContribution:      200,
			GoalMonthlyContributionEmpty: 100,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "BUDGETMATE_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "BUDGETMATE_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
