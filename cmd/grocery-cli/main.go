package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"meal-rotation/internal/client"
	"meal-rotation/internal/core/grocery"
)

func main() {
	var (
		baseURL  = flag.String("url", envOr("GROCERY_API_URL", "http://localhost:4000"), "API base URL")
		userID   = flag.Int64("user", 0, "user id")
		weeks    = flag.String("weeks", "", "comma separated week numbers (default: all)")
		check    = flag.String("check", "", "item key to check")
		uncheck  = flag.String("uncheck", "", "item key to uncheck")
		clearAll = flag.Bool("clear", false, "clear all checks")
		timeout  = flag.Duration("timeout", 10*time.Second, "request timeout")
	)
	flag.Parse()

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "-user is required")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.NewClient(*baseURL, *userID, *timeout)
	if err := run(ctx, c, *weeks, *check, *uncheck, *clearAll, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, weeks, check, uncheck string, clearAll bool, out io.Writer) error {
	switch {
	case clearAll:
		if err := c.ClearChecks(ctx); err != nil {
			return err
		}
	case check != "":
		if _, err := c.SetCheck(ctx, check, true); err != nil {
			return err
		}
	case uncheck != "":
		if _, err := c.SetCheck(ctx, uncheck, false); err != nil {
			return err
		}
	}

	var requested []int
	if weeks != "" {
		requested = grocery.ParseWeeks(weeks)
	}
	list, err := c.GetGroceryList(ctx, requested)
	if err != nil {
		return err
	}
	printList(out, list)
	return nil
}

func printList(out io.Writer, list *grocery.List) {
	fmt.Fprintf(out, "Weeks: %v\n", list.Weeks)

	categories := make([]string, 0, len(list.Items))
	for category := range list.Items {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintf(out, "\n%s\n", category)
		for _, row := range list.Items[grocery.Category(category)] {
			mark := " "
			if row.Checked {
				mark = "x"
			}
			fmt.Fprintf(out, "  [%s] %s: %s\n", mark, row.Name, row.CombinedQuantity)
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
