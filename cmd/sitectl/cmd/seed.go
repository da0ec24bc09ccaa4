package cmd

import (
	"fmt"
	"os"

	"mosaic-media/internal/content"
	"mosaic-media/internal/db"
	"mosaic-media/internal/models"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var seedFile string

type seedData struct {
	Categories []struct {
		Name        string `yaml:"name"`
		Slug        string `yaml:"slug"`
		Description string `yaml:"description"`
	} `yaml:"categories"`
	ProjectCategories []struct {
		Name        string `yaml:"name"`
		Slug        string `yaml:"slug"`
		Description string `yaml:"description"`
	} `yaml:"projectCategories"`
	Sections []struct {
		Title        string `yaml:"title"`
		Description  string `yaml:"description"`
		Type         string `yaml:"type"`
		Category     string `yaml:"category"`
		Limit        int    `yaml:"limit"`
		DisplayStyle string `yaml:"displayStyle"`
	} `yaml:"sections"`
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seeds categories and home-page sections from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(seedFile)
		if err != nil {
			return fmt.Errorf("failed to read seed file: %w", err)
		}

		var seed seedData
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return fmt.Errorf("failed to parse seed file: %w", err)
		}

		database, err := db.New(appConfig.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		slugToID := map[string]int{}
		for _, c := range seed.Categories {
			category := models.Category{
				Name:        c.Name,
				Slug:        c.Slug,
				Description: c.Description,
				Status:      "active",
			}
			if category.Slug == "" {
				category.Slug = content.Slugify(c.Name)
			}
			if err := database.CreateCategory(&category); err != nil {
				fmt.Printf("skipping category %q: %v\n", c.Name, err)
				continue
			}
			slugToID[category.Slug] = category.ID
			fmt.Printf("category %q created\n", category.Name)
		}

		for _, c := range seed.ProjectCategories {
			category := models.ProjectCategory{
				Name:        c.Name,
				Slug:        c.Slug,
				Description: c.Description,
			}
			if category.Slug == "" {
				category.Slug = content.Slugify(c.Name)
			}
			if err := database.CreateProjectCategory(&category); err != nil {
				fmt.Printf("skipping project category %q: %v\n", c.Name, err)
				continue
			}
			fmt.Printf("project category %q created\n", category.Name)
		}

		for i, s := range seed.Sections {
			section := models.Section{
				Title:        s.Title,
				Description:  s.Description,
				Type:         s.Type,
				Limit:        s.Limit,
				Position:     i,
				DisplayStyle: s.DisplayStyle,
				IsActive:     true,
			}
			if id, ok := slugToID[s.Category]; ok {
				section.CategoryID = &id
			}
			if section.DisplayStyle == "" {
				section.DisplayStyle = models.StyleGrid
			}
			if section.Limit <= 0 {
				section.Limit = 6
			}
			if err := database.CreateSection(&section); err != nil {
				fmt.Printf("skipping section %q: %v\n", s.Title, err)
				continue
			}
			fmt.Printf("section %q created at position %d\n", section.Title, section.Position)
		}

		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "seed.yaml", "seed file path")
	rootCmd.AddCommand(seedCmd)
}
