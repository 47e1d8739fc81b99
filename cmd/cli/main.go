package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "banking-cli",
		Short: "Banking service CLI tool",
		Long:  `A command line interface for interacting with the banking transactions API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the banking API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var documentNumber string
	createAccountCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/accounts", map[string]any{"document_number": documentNumber})
		},
	}
	createAccountCmd.Flags().StringVar(&documentNumber, "document-number", "", "Customer document number (digits only)")
	createAccountCmd.MarkFlagRequired("document-number")

	getAccountCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Get an account by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/" + args[0])
		},
	}

	accountCmd.AddCommand(createAccountCmd, getAccountCmd)

	// Transaction commands
	transactionCmd := &cobra.Command{
		Use:   "transaction",
		Short: "Transaction operations",
	}

	var (
		accountID       int64
		operationTypeID int64
		amount          string
	)
	createTransactionCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a transaction",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/transactions", map[string]any{
				"account_id":        accountID,
				"operation_type_id": operationTypeID,
				"amount":            json.Number(amount),
			})
		},
	}
	createTransactionCmd.Flags().Int64Var(&accountID, "account", 0, "Account ID")
	createTransactionCmd.Flags().Int64Var(&operationTypeID, "type", 0, "Operation type ID")
	createTransactionCmd.Flags().StringVar(&amount, "amount", "", "Requested amount (positive decimal)")
	createTransactionCmd.MarkFlagRequired("account")
	createTransactionCmd.MarkFlagRequired("type")
	createTransactionCmd.MarkFlagRequired("amount")

	listTransactionsCmd := &cobra.Command{
		Use:   "list [account-id]",
		Short: "List an account's transactions",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/" + args[0] + "/transactions")
		},
	}

	transactionCmd.AddCommand(createTransactionCmd, listTransactionsCmd)

	// Catalog and health
	operationTypesCmd := &cobra.Command{
		Use:   "operation-types",
		Short: "List the operation-type catalog",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/operation-types")
		},
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service readiness",
		Run: func(cmd *cobra.Command, args []string) {
			get("/ready")
		},
	}

	rootCmd.AddCommand(accountCmd, transactionCmd, operationTypesCmd, healthCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func get(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func post(path string, payload map[string]any) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	// A fresh key per invocation; rerunning the exact command is a retry
	// only if the caller pins the key themselves via a proxy or script.
	req.Header.Set("Idempotency-Key", ulid.Make().String())

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Println(pretty.String())
}
