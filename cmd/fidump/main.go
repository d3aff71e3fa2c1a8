package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/foodinsight/FoodInsecurityViewer/src/dataset"
	"github.com/foodinsight/FoodInsecurityViewer/src/sources"
)

// fidump inspects the joined datasets on the terminal, without the viewer UI.

var (
	flagFood = &cli.StringFlag{
		Name:  "food",
		Value: "datasets/food_security.json",
		Usage: "food security index feed (.json, .xlsx or .xls)",
	}
	flagCases = &cli.StringFlag{
		Name:  "cases",
		Value: "datasets/owid-covid-data.csv",
		Usage: "OWID confirmed-cases CSV",
	}
	flagPopulation = &cli.StringFlag{
		Name:  "population",
		Value: "datasets/population.csv",
		Usage: "World Bank population CSV",
	}
	flagCountries = &cli.StringSliceFlag{
		Name:  "country",
		Usage: "country to include in the selected series (repeatable; default Canada, United States, Japan, Australia, United Kingdom)",
	}
	flagLogLevel = &cli.StringFlag{
		Name:  "log-level",
		Value: "warn",
		Usage: "log level: debug, info, warn, error",
	}
)

var defaultCountries = []string{"Canada", "United States", "Japan", "Australia", "United Kingdom"}

func main() {
	app := &cli.App{
		Name:    "fidump",
		Usage:   "Dump the COVID-19 cases vs food insecurity datasets",
		Suggest: true,
		Flags:   []cli.Flag{flagFood, flagCases, flagPopulation, flagLogLevel},
		Before: func(cctx *cli.Context) error {
			sources.SetLogLevel(cctx.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			joinCmd,
			selectedCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var joinCmd = &cli.Command{
	Name:  "join",
	Usage: "Print the all-countries dataset (countries present in both sources)",
	Action: func(cctx *cli.Context) error {
		all, err := loadJoined(cctx)
		if err != nil {
			return err
		}
		for _, name := range all.Names() {
			p := all[name]
			fmt.Printf("%-32s confirmed=%6.2f%%  food_insecurity=%5.1f%%\n", name, p.ConfirmedCases, p.FoodInsecurity)
		}
		fmt.Printf("%d countries joined\n", len(all))
		return nil
	},
}

var selectedCmd = &cli.Command{
	Name:  "selected",
	Usage: "Print the ordered selected-countries series",
	Flags: []cli.Flag{flagCountries},
	Action: func(cctx *cli.Context) error {
		all, err := loadJoined(cctx)
		if err != nil {
			return err
		}
		allowList := cctx.StringSlice("country")
		if len(allowList) == 0 {
			allowList = defaultCountries
		}
		selected, err := dataset.BuildSelected(all, allowList)
		if err != nil {
			return err
		}
		spew.Dump(selected)
		return nil
	},
}

func loadJoined(cctx *cli.Context) (dataset.AllCountries, error) {
	fi, err := sources.LoadFoodInsecurity(cctx.String("food"))
	if err != nil {
		return nil, err
	}
	pops, err := sources.LoadPopulations(cctx.String("population"))
	if err != nil {
		return nil, err
	}
	cc, err := sources.LoadConfirmedCases(cctx.String("cases"), pops)
	if err != nil {
		return nil, err
	}
	return dataset.BuildAllCountries(fi, cc), nil
}
