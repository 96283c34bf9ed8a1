package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"larder/internal/ledger"
	"larder/internal/models"
)

func newInventoryCommand(ctx *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Inspect and change the pantry",
	}
	cmd.AddCommand(newInventoryListCommand(ctx))
	cmd.AddCommand(newInventoryAddCommand(ctx))
	cmd.AddCommand(newInventoryArchiveCommand(ctx))
	cmd.AddCommand(newInventoryUnarchiveCommand(ctx))
	return cmd
}

func newInventoryListCommand(ctx *appContext) *cobra.Command {
	var showArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pantry items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := ctx.ledger.ActiveItems()
			if showArchived {
				items = ctx.ledger.Items()
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "pantry is empty")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				state := "active"
				if item.IsArchived {
					state = "archived"
				}
				flags := ""
				if item.IsLowStock() {
					flags = "low"
				}
				if item.IsExpired(time.Now()) {
					if flags != "" {
						flags += ", "
					}
					flags += "expired"
				}
				rows = append(rows, []string{
					item.ID,
					item.IngredientName,
					formatQuantity(item.Quantity),
					string(item.Unit),
					state,
					flags,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				renderTable([]string{"ID", "Ingredient", "Qty", "Unit", "State", "Flags"}, rows, 3))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showArchived, "archived", false, "Include archived items")
	return cmd
}

func newInventoryAddCommand(ctx *appContext) *cobra.Command {
	var (
		brand     string
		store     string
		notes     string
		threshold float64
		expires   string
		tags      []string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <quantity> <unit>",
		Short: "Add stock, merging with an existing item of the same name and unit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			unit := models.ParseUnit(args[2])

			meta := ledger.Metadata{CustomTags: tags}
			if cmd.Flags().Changed("brand") {
				meta.Brand = &brand
			}
			if cmd.Flags().Changed("store") {
				meta.DefaultStoreID = &store
			}
			if cmd.Flags().Changed("notes") {
				meta.Notes = &notes
			}
			if cmd.Flags().Changed("threshold") {
				meta.LowStockThreshold = &threshold
			}
			if cmd.Flags().Changed("expires") {
				date, parseErr := time.Parse("2006-01-02", expires)
				if parseErr != nil {
					return fmt.Errorf("invalid expiration date %q, want YYYY-MM-DD", expires)
				}
				meta.ExpirationDate = &date
			}

			item := ctx.ledger.Upsert(args[0], quantity, unit, meta)
			if err := ctx.savePantry(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s (id %s)\n",
				item.IngredientName, formatQuantity(item.Quantity), item.Unit, item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "Brand")
	cmd.Flags().StringVar(&store, "store", "", "Default store id")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Low stock threshold")
	cmd.Flags().StringVar(&expires, "expires", "", "Expiration date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Custom tags")
	return cmd
}

func newInventoryArchiveCommand(ctx *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a pantry item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := ctx.ledger.Archive(args[0])
			if err != nil {
				return err
			}
			if err := ctx.savePantry(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "archived %s (%s)\n", item.IngredientName, item.Unit)
			return nil
		},
	}
}

func newInventoryUnarchiveCommand(ctx *appContext) *cobra.Command {
	var quantity float64

	cmd := &cobra.Command{
		Use:   "unarchive <id>",
		Short: "Restore an archived pantry item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var qty *float64
			if cmd.Flags().Changed("quantity") {
				qty = &quantity
			}
			item, err := ctx.ledger.Unarchive(args[0], qty)
			if err != nil {
				return err
			}
			if err := ctx.savePantry(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "unarchived %s: %s %s\n",
				item.IngredientName, formatQuantity(item.Quantity), item.Unit)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&quantity, "quantity", "q", 0, "Quantity to restore with")
	return cmd
}
