package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/biographdb/biograph/client"
)

func newPersonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Biographical record commands",
	}
	cmd.AddCommand(personGetCmd())
	cmd.AddCommand(personSearchCmd())
	cmd.AddCommand(personRelationshipsCmd())
	return cmd
}

func personGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a person by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			person, err := apiClient.People.Get(context.Background(), args[0])
			if err != nil {
				fatal("get person", err)
			}
			output(person, person.ID)
		},
	}
}

func personSearchCmd() *cobra.Command {
	var dynasty string
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search people by name",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.People.Search(context.Background(), args[0], dynasty, limit)
			if err != nil {
				fatal("search", err)
			}
			if flagFmt == "table" {
				formatTable(
					[]string{"ID", "NAME", "DYNASTY", "YEARS"},
					searchRows(result.People),
				)
				return
			}
			output(result, strconv.Itoa(result.Count))
		},
	}
	cmd.Flags().StringVar(&dynasty, "dynasty", "", "Restrict to one dynasty")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	return cmd
}

func personRelationshipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relationships <id>",
		Short: "List every relationship touching a person",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.People.Relationships(context.Background(), args[0])
			if err != nil {
				fatal("relationships", err)
			}
			if flagFmt == "table" {
				formatTable(
					[]string{"SOURCE", "TARGET", "KIND", "LABEL"},
					relationshipRows(result.Relationships),
				)
				return
			}
			output(result, strconv.Itoa(result.Count))
		},
	}
}

func searchRows(people []client.Person) [][]string {
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		rows = append(rows, []string{p.ID, p.Name, p.Dynasty, yearSpan(p.BirthYear, p.DeathYear)})
	}
	return rows
}

func relationshipRows(rels []client.Relationship) [][]string {
	rows := make([][]string, 0, len(rels))
	for _, r := range rels {
		rows = append(rows, []string{r.Source, r.Target, r.Kind, r.Label})
	}
	return rows
}

func yearSpan(birth, death *int) string {
	span := ""
	if birth != nil {
		span = strconv.Itoa(*birth)
	}
	span += "-"
	if death != nil {
		span += strconv.Itoa(*death)
	}
	if span == "-" {
		return ""
	}
	return span
}
