package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iyhunko/treko-inventory/internal/panel"
	"github.com/iyhunko/treko-inventory/internal/store"
	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered by name or description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			mgr.SetSearchTerm(search)
			a.printCatalog(mgr.Snapshot())
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive filter")
	return cmd
}

func (a *app) newCreateCmd() *cobra.Command {
	var name, description, price string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			mgr.SetName(name)
			mgr.SetDescription(description)
			mgr.SetPriceText(price)
			if err := mgr.Submit(cmd.Context()); err != nil {
				return errors.New(mgr.Err())
			}
			a.printProduct(mgr.Products()[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "nome", "", "product name")
	cmd.Flags().StringVar(&description, "descricao", "", "product description")
	cmd.Flags().StringVar(&price, "preco", "", "product price, e.g. 19.99")
	return cmd
}

func (a *app) newUpdateCmd() *cobra.Command {
	var name, description, price string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a product; fields not given keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			mgr, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			product, ok := findProduct(mgr.Products(), id)
			if !ok {
				return fmt.Errorf("produto %d não encontrado", id)
			}

			mgr.StartEdit(product)
			flags := cmd.Flags()
			if flags.Changed("nome") {
				mgr.SetName(name)
			}
			if flags.Changed("descricao") {
				mgr.SetDescription(description)
			}
			if flags.Changed("preco") {
				mgr.SetPriceText(price)
			}
			if err := mgr.Submit(cmd.Context()); err != nil {
				return errors.New(mgr.Err())
			}

			updated, _ := findProduct(mgr.Products(), id)
			a.printProduct(updated)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "nome", "", "new name")
	cmd.Flags().StringVar(&description, "descricao", "", "new description")
	cmd.Flags().StringVar(&price, "preco", "", "new price")
	return cmd
}

func (a *app) newDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a product after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			mgr, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			mgr.RequestDelete(id)
			if !yes && !a.confirm(panel.MsgConfirmDelete) {
				mgr.CancelDelete()
				fmt.Fprintln(a.out, "Exclusão cancelada.")
				return nil
			}
			if err := mgr.ConfirmDelete(cmd.Context()); err != nil {
				return errors.New(mgr.Err())
			}
			fmt.Fprintf(a.out, "Produto %d excluído.\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// confirm asks a yes/no question on the command's input. Anything but an
// explicit yes declines.
func (a *app) confirm(question string) bool {
	fmt.Fprintf(a.out, "%s [s/N] ", question)
	answer, _ := bufio.NewReader(a.in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim", "y", "yes":
		return true
	default:
		return false
	}
}

func (a *app) printCatalog(v panel.View) {
	fmt.Fprintln(a.out, v.Heading)
	if len(v.Products) == 0 {
		fmt.Fprintln(a.out, v.EmptyText)
		return
	}
	for _, p := range v.Products {
		a.printProduct(p)
	}
}

func (a *app) printProduct(p store.Product) {
	fmt.Fprintf(a.out, "%d\t%s\t%s\t%s\n", p.ID, p.Name, panel.FormatPrice(p.Price), panel.DescriptionOrDefault(p.Description))
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product ID %q", arg)
	}
	return id, nil
}

func findProduct(products []store.Product, id int64) (store.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return store.Product{}, false
}
