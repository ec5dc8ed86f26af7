package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/geotext"
	"github.com/tsawler/geotext/ocr"
)

var logger *zap.Logger

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:   "geotext",
		Short: "Extract French postal-address mentions from OCR results",
		Long:  `geotext matches OCR text of product packaging against the La Poste commune gazetteer and reports city mentions, linked postal codes, and address snippets.`,
	}

	rootCmd.AddCommand(createExtractCmd())
	rootCmd.AddCommand(createOCRCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createExtractCmd creates the command that runs an extraction pass over a
// stored OCR response document.
func createExtractCmd() *cobra.Command {
	var gazetteerPath string

	cmd := &cobra.Command{
		Use:   "extract <ocr.json>",
		Short: "Extract locations from a stored OCR response document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext, err := openExtractor(gazetteerPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading OCR document: %w", err)
			}
			res, err := ocr.ParseJSON(data)
			if err != nil {
				return err
			}

			start := time.Now()
			result := ext.ExtractLocation(res)
			logger.Info("extraction complete",
				zap.String("locale", res.Locale()),
				zap.Int("cities", len(result.Cities)),
				zap.Int("linked", len(result.FullCities)),
				zap.Duration("elapsed", time.Since(start)),
			)

			return printJSON(result)
		},
	}

	cmd.Flags().StringVarP(&gazetteerPath, "gazetteer", "g", "laposte_hexasmal.json.gz",
		"path to the gzip-compressed commune gazetteer")
	return cmd
}

// createOCRCmd creates the command that recognizes an image and extracts
// locations from the recognized text. Requires a binary built with -tags ocr.
func createOCRCmd() *cobra.Command {
	var (
		gazetteerPath string
		language      string
		preprocess    bool
	)

	cmd := &cobra.Command{
		Use:   "image <packaging.png>",
		Short: "Recognize a packaging image and extract locations from it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext, err := openExtractor(gazetteerPath)
			if err != nil {
				return err
			}

			client, err := ocr.New()
			if err != nil {
				return err
			}
			defer client.Close()
			if err := client.SetLanguage(language); err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}
			if preprocess {
				if data, err = ocr.PrepareImage(data); err != nil {
					return err
				}
			}

			start := time.Now()
			res, err := client.Recognize(data)
			if err != nil {
				return err
			}
			logger.Info("recognition complete",
				zap.String("language", language),
				zap.Int("annotations", len(res.Annotations)),
				zap.Duration("elapsed", time.Since(start)),
			)

			return printJSON(ext.ExtractLocation(res))
		},
	}

	cmd.Flags().StringVarP(&gazetteerPath, "gazetteer", "g", "laposte_hexasmal.json.gz",
		"path to the gzip-compressed commune gazetteer")
	cmd.Flags().StringVarP(&language, "lang", "l", "fra", "Tesseract language(s), e.g. fra+eng")
	cmd.Flags().BoolVar(&preprocess, "preprocess", true, "grayscale/contrast preprocessing before OCR")
	return cmd
}

// openExtractor loads the gazetteer and builds the shared extractor.
func openExtractor(path string) (*geotext.Extractor, error) {
	start := time.Now()
	ext, err := geotext.Open(path)
	if err != nil {
		return nil, err
	}
	logger.Info("gazetteer loaded",
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)),
	)
	return ext, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
