package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankledger-cli",
		Short: "BankLedger CLI tool",
		Long:  `A command line interface for interacting with the BankLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the BankLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(depositCmd())
	rootCmd.AddCommand(withdrawCmd())
	rootCmd.AddCommand(transferCmd())
	rootCmd.AddCommand(ledgerCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var accountType, customerName, date string
	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new account",
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{
				"customer_name": customerName,
				"type":          accountType,
			}
			if date != "" {
				body["opened_at"] = date + "T00:00:00Z"
			}
			doPost("/api/v1/accounts", body)
		},
	}
	openCmd.Flags().StringVar(&customerName, "name", "", "Customer name")
	openCmd.Flags().StringVar(&accountType, "type", "savings", "Account type (savings or home_loan)")
	openCmd.Flags().StringVar(&date, "date", "", "Opening date (YYYY-MM-DD)")
	openCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List open accounts",
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/accounts", nil)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get NUMBER",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/accounts/"+url.PathEscape(args[0]), nil)
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance NUMBER",
		Short: "Show an account's balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/accounts/"+url.PathEscape(args[0])+"/balance", nil)
		},
	}

	statementCmd := &cobra.Command{
		Use:   "statement NUMBER",
		Short: "Show the mini statement",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/accounts/"+url.PathEscape(args[0])+"/statement", nil)
		},
	}

	var toDate string
	interestCmd := &cobra.Command{
		Use:   "interest NUMBER",
		Short: "Calculate accrued interest",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			query := url.Values{}
			if toDate != "" {
				query.Set("to", toDate)
			}
			doGet("/api/v1/accounts/"+url.PathEscape(args[0])+"/interest", query)
		},
	}
	interestCmd.Flags().StringVar(&toDate, "to", "", "Calculate up to this date (YYYY-MM-DD)")

	var closeDate string
	closeCmd := &cobra.Command{
		Use:   "close NUMBER",
		Short: "Close an account and print its history",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			query := url.Values{}
			if closeDate != "" {
				query.Set("date", closeDate)
			}
			doDelete("/api/v1/accounts/"+url.PathEscape(args[0]), query)
		},
	}
	closeCmd.Flags().StringVar(&closeDate, "date", "", "Closing date (YYYY-MM-DD)")

	cmd.AddCommand(openCmd, listCmd, getCmd, balanceCmd, statementCmd, interestCmd, closeCmd)
	return cmd
}

func depositCmd() *cobra.Command {
	var description, date string
	cmd := &cobra.Command{
		Use:   "deposit NUMBER AMOUNT",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			doPost("/api/v1/deposits", movementBody(args[0], args[1], description, date))
		},
	}
	cmd.Flags().StringVar(&description, "description", "deposit", "Statement description")
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	return cmd
}

func withdrawCmd() *cobra.Command {
	var description, date string
	cmd := &cobra.Command{
		Use:   "withdraw NUMBER AMOUNT",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			doPost("/api/v1/withdrawals", movementBody(args[0], args[1], description, date))
		},
	}
	cmd.Flags().StringVar(&description, "description", "withdrawal", "Statement description")
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	return cmd
}

func transferCmd() *cobra.Command {
	var description, date string
	cmd := &cobra.Command{
		Use:   "transfer FROM TO AMOUNT",
		Short: "Transfer between accounts",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{
				"from_account_number": args[0],
				"to_account_number":   args[1],
				"amount":              args[2],
				"description":         description,
			}
			if date != "" {
				body["date"] = date + "T00:00:00Z"
			}
			doPost("/api/v1/transfers", body)
		},
	}
	cmd.Flags().StringVar(&description, "description", "transfer", "Statement description")
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/ledger/consistency", nil)
		},
	}

	cmd.AddCommand(consistencyCmd)
	return cmd
}

func movementBody(number, amount, description, date string) map[string]any {
	body := map[string]any{
		"account_number": number,
		"amount":         amount,
		"description":    description,
	}
	if date != "" {
		body["date"] = date + "T00:00:00Z"
	}
	return body
}

func doGet(path string, query url.Values) {
	target := baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(target)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	printResponse(resp)
}

func doPost(path string, body map[string]any) {
	payload, err := json.Marshal(body)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	printResponse(resp)
}

func doDelete(path string, query url.Values) {
	target := baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodDelete, target, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	printResponse(resp)
}

func printResponse(resp *http.Response) {
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Println(string(body))
		return
	}
	printJSON(parsed)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to format response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
