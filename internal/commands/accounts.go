package commands

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline/internal/dto"
	"github.com/ledgerline/ledgerline/internal/middleware"
)

func newAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
	}

	cmd.AddCommand(newAccountsCreateCommand())
	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsRecordsCommand())

	return cmd
}

func newAccountsCreateCommand() *cobra.Command {
	var name string
	var purpose string
	var bookName string
	var cashFunds string
	var investmentWorth string
	var debtTotal string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			ctx := middleware.AddLoggerToCtx(cmd.Context(), logger)

			application, err := newApp(ctx, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			req := dto.CreateAccountRequest{
				Name:     name,
				Purpose:  purpose,
				BookName: bookName,
			}
			if req.CashFunds, err = parseBalance(cashFunds, "cash"); err != nil {
				return err
			}
			if req.InvestmentWorth, err = parseBalance(investmentWorth, "worth"); err != nil {
				return err
			}
			if req.DebtTotal, err = parseBalance(debtTotal, "debt"); err != nil {
				return err
			}

			account, err := application.services.Account.CreateAccount(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created account %s (%s)\n", account.Name, account.AccountID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&purpose, "purpose", "", "what the account is for")
	cmd.Flags().StringVar(&bookName, "book-name", "", "name for the account's book (defaults to the account name)")
	cmd.Flags().StringVar(&cashFunds, "cash", "0", "seeded cash funds")
	cmd.Flags().StringVar(&investmentWorth, "worth", "0", "seeded investment worth")
	cmd.Flags().StringVar(&debtTotal, "debt", "0", "seeded debt total")

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			ctx := middleware.AddLoggerToCtx(cmd.Context(), logger)

			application, err := newApp(ctx, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			accounts, err := application.services.Account.ListAccounts(ctx)
			if err != nil {
				return err
			}

			for _, account := range accounts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  cash=%s worth=%s debt=%s\n",
					account.AccountID,
					account.Name,
					account.CashFunds.StringFixed(2),
					account.InvestmentWorth.StringFixed(2),
					account.DebtTotal.StringFixed(2),
				)
			}
			return nil
		},
	}
}

func newAccountsRecordsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "records <account-id>",
		Short: "Show the newest records on an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			ctx := middleware.AddLoggerToCtx(cmd.Context(), logger)

			application, err := newApp(ctx, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			records, err := application.services.Account.ListRecords(ctx, args[0], limit)
			if err != nil {
				return err
			}

			for _, record := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-14s  $%s  %s - %s (%s)\n",
					record.TransactionDate.Format("2006-01-02"),
					record.ChangeType,
					record.Amount.StringFixed(2),
					record.Business,
					record.Note,
					record.Category,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "max records to show (0 for the default)")

	return cmd
}

func parseBalance(raw, flagName string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s value %q: %w", flagName, raw, err)
	}
	return d, nil
}
