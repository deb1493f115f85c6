package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/format"
	"github.com/osse101/FarmCalc_Go/internal/preferences"
)

var errUsage = errors.New("usage")

// RankCommand prints the ranked crop list
type RankCommand struct{}

func (c *RankCommand) Name() string { return "rank" }
func (c *RankCommand) Description() string { return "Rank crops by profit per hour" }

func (c *RankCommand) Run(ctx context.Context, env *Env, args []string) error {
	var profile string
	fs := newFlagSet(c.Name(), &profile)
	limit := fs.Int("limit", 0, "show at most this many crops (0 for all)")
	eligibleOnly := fs.Bool("eligible", false, "hide crops that can't be planted")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ranked, err := env.Planner.Ranking(ctx, profile)
	if err != nil {
		return err
	}

	tw := newTable(env.Out)
	fmt.Fprintln(tw, "#\tCROP\tPROFIT/H\tXP/H\tEFFORT\tSTATUS")
	shown := 0
	for _, rc := range ranked {
		if *limit > 0 && shown == *limit {
			break
		}
		if *eligibleOnly && !rc.Eligible {
			continue
		}
		status := "ok"
		if !rc.Eligible {
			status = "needs " + strings.Join(rc.Blockers, ", ")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			rc.Position, rc.Crop.Name,
			format.Profit(rc.Stats.ProfitPerHour), format.XP(rc.Stats.XPPerHour),
			format.XP(rc.Stats.EffortRequired), status)
		shown++
	}
	return tw.Flush()
}

// DetailCommand prints the cost and revenue breakdown of one crop
type DetailCommand struct{}

func (c *DetailCommand) Name() string { return "detail" }
func (c *DetailCommand) Description() string { return "Show the profit breakdown of a crop" }

func (c *DetailCommand) Run(ctx context.Context, env *Env, args []string) error {
	var profile string
	fs := newFlagSet(c.Name(), &profile)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: detail [-profile p] <crop>", errUsage)
	}
	name := strings.Join(fs.Args(), " ")

	d, err := env.Planner.Detail(ctx, profile, name)
	if err != nil {
		return err
	}

	PrintHeader(env.Out, d.Crop.Name)
	tw := newTable(env.Out)
	rows := [][2]string{
		{"Land", fmt.Sprintf("%s (%d plots)", format.LandSize(d.LandSize), d.PlotCount)},
		{"Price", format.Profit(d.Price)},
		{"Average yield", format.XP(d.AverageYield)},
		{"Harvest time", format.XP(d.EffectiveHarvestTime) + "h"},
		{"Effort needed", format.XP(d.EffortRequired)},
		{"Planting cost", format.Profit(d.TotalPlantingCost)},
		{"Gross revenue", format.Profit(d.GrossRevenueTotal)},
		{"Market fee", format.Profit(d.MarketFee)},
		{"Net profit", format.Profit(d.NetProfitTotal)},
		{"Net per planting", format.Profit(d.NetProfitPerPlanting)},
		{"Profit / hour", format.Profit(d.ProfitPerHour)},
		{"XP / hour", format.XP(d.XPPerHour)},
		{"ROI", format.DetailROI(*d)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

// SetPriceCommand stores the market price of a crop
type SetPriceCommand struct{}

func (c *SetPriceCommand) Name() string { return "set-price" }
func (c *SetPriceCommand) Description() string { return "Set the market price of a crop" }

func (c *SetPriceCommand) Run(ctx context.Context, env *Env, args []string) error {
	var profile string
	fs := newFlagSet(c.Name(), &profile)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("%w: set-price [-profile p] <crop> <price>", errUsage)
	}
	rest := fs.Args()
	name := strings.Join(rest[:len(rest)-1], " ")
	raw := rest[len(rest)-1]
	price := preferences.CoerceNumber(raw)
	if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err != nil {
		PrintWarning(env.Out, "%q is not a number, using %s", raw, format.Profit(price))
	}

	cropName, err := env.Planner.SetPrice(ctx, profile, name, price)
	if err != nil {
		return err
	}
	PrintSuccess(env.Out, "%s price set to %s", cropName, format.Profit(price))
	return nil
}

// SetCommand changes effort, level or land size
type SetCommand struct{}

func (c *SetCommand) Name() string { return "set" }
func (c *SetCommand) Description() string { return "Change effort, level or land size" }

func (c *SetCommand) Run(ctx context.Context, env *Env, args []string) error {
	var profile string
	fs := newFlagSet(c.Name(), &profile)
	effort := fs.String("effort", "", "available effort")
	level := fs.String("level", "", "character level")
	land := fs.String("land", "", "land size: small, medium or large")
	if err := fs.Parse(args); err != nil {
		return err
	}

	update, err := buildUpdate(fs, *effort, *level, *land)
	if err != nil {
		return err
	}
	if update.Empty() {
		return fmt.Errorf("%w: set [-profile p] [-effort n] [-level n] [-land size]", errUsage)
	}

	prefs, err := env.Planner.UpdatePreferences(ctx, profile, update)
	if err != nil {
		return err
	}
	PrintSuccess(env.Out, "Effort %s · level %d · %s land",
		format.XP(prefs.AvailableEffort), prefs.CharacterLevel, format.LandSize(prefs.LandSize))
	return nil
}

// buildUpdate only fills the flags that were given on the command line
func buildUpdate(fs *flag.FlagSet, effort, level, land string) (domain.PreferencesUpdate, error) {
	var update domain.PreferencesUpdate
	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "effort":
			v := preferences.CoerceNumber(effort)
			update.AvailableEffort = &v
		case "level":
			v := preferences.CoerceLevel(level)
			update.CharacterLevel = &v
		case "land":
			var ls domain.LandSize
			ls, err = domain.ParseLandSize(land)
			update.LandSize = &ls
		}
	})
	return update, err
}

// PrefsCommand prints the stored preferences and prices
type PrefsCommand struct{}

func (c *PrefsCommand) Name() string { return "prefs" }
func (c *PrefsCommand) Description() string { return "Show stored preferences and prices" }

func (c *PrefsCommand) Run(ctx context.Context, env *Env, args []string) error {
	var profile string
	fs := newFlagSet(c.Name(), &profile)
	if err := fs.Parse(args); err != nil {
		return err
	}

	prefs, err := env.Planner.Preferences(ctx, profile)
	if err != nil {
		return err
	}

	PrintHeader(env.Out, "Profile "+profile)
	tw := newTable(env.Out)
	fmt.Fprintf(tw, "Effort\t%s\n", format.XP(prefs.AvailableEffort))
	fmt.Fprintf(tw, "Level\t%d\n", prefs.CharacterLevel)
	fmt.Fprintf(tw, "Land\t%s\n", format.LandSize(prefs.LandSize))
	if err := tw.Flush(); err != nil {
		return err
	}

	PrintHeader(env.Out, "Prices")
	tw = newTable(env.Out)
	for _, crop := range env.Planner.Catalog() {
		fmt.Fprintf(tw, "%s\t%s\n", crop.Name, format.Profit(prefs.Price(crop.Name)))
	}
	return tw.Flush()
}

// CatalogCommand lists the crop catalog
type CatalogCommand struct{}

func (c *CatalogCommand) Name() string { return "catalog" }
func (c *CatalogCommand) Description() string { return "List every crop in the catalog" }

func (c *CatalogCommand) Run(_ context.Context, env *Env, _ []string) error {
	tw := newTable(env.Out)
	fmt.Fprintln(tw, "CROP\tLEVEL\tYIELD\tHARVEST H\tEFFORT\tXP\tCOST\tTREE")
	for _, crop := range env.Planner.Catalog() {
		tree := ""
		if crop.IsTree {
			tree = "yes"
		}
		fmt.Fprintf(tw, "%s\t%d\t%g-%g\t%g\t%g\t%g\t%g\t%s\n",
			crop.Name, crop.LevelRequirement, crop.MinYield, crop.MaxYield,
			crop.HarvestTimeHours, crop.EffortCost, crop.ExperienceReward, crop.PlantingCost, tree)
	}
	return tw.Flush()
}
