package services

import (
	"regexp"
	"strings"

	"github.com/grantreports/core/internal/domain/entities"
)

var questionDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

const (
	minFileSizeMB = 1
	maxFileSizeMB = 100
)

// ValidateQuestionConfig checks a question's type-specific options and returns
// one message per problem. An empty result means the question can be saved.
func ValidateQuestionConfig(q *entities.Question) []string {
	errs := []string{}
	if q == nil {
		return append(errs, "Question text is required")
	}

	if strings.TrimSpace(q.QuestionName) == "" {
		errs = append(errs, "Question text is required")
	}

	switch q.QuestionType {
	case entities.QuestionTypeSelection:
		if strings.TrimSpace(q.SelectionOptions) == "" {
			errs = append(errs, "Selection options are required")
		} else if len(entities.SplitSelectionOptions(q.SelectionOptions)) < 2 {
			errs = append(errs, "At least 2 selection options are required")
		}

	case entities.QuestionTypeDate:
		// bounds are only checked as a pair
		if q.EarliestDate != "" && q.LatestDate != "" {
			if !questionDatePattern.MatchString(q.EarliestDate) {
				errs = append(errs, "Earliest date must be in DD/MM/YYYY format")
			}
			if !questionDatePattern.MatchString(q.LatestDate) {
				errs = append(errs, "Latest date must be in DD/MM/YYYY format")
			}
		}

	case entities.QuestionTypeText:
		if q.TextType == "multi" && (q.TextPrefix != "" || q.TextSuffix != "") {
			errs = append(errs, "Prefix and suffix are not supported with multi-line text (textarea)")
		}

	case entities.QuestionTypeNumber:
		if q.MinValue != nil && q.MaxValue != nil && *q.MinValue >= *q.MaxValue {
			errs = append(errs, "Minimum value must be less than maximum value")
		}
		if q.StepValue != nil && *q.StepValue <= 0 {
			errs = append(errs, "Step value must be greater than 0")
		}

	case entities.QuestionTypeFile:
		if q.MaxFileSize != nil && *q.MaxFileSize < minFileSizeMB {
			errs = append(errs, "Maximum file size must be at least 1MB")
		}
		if q.MaxFiles != nil && *q.MaxFiles < 1 {
			errs = append(errs, "Maximum number of files must be at least 1")
		}
		if q.MaxFileSize != nil && *q.MaxFileSize > maxFileSizeMB {
			errs = append(errs, "Maximum file size cannot exceed 100MB")
		}

	case entities.QuestionTypeAddAnother:
		if q.AddAnotherMinItems != nil && q.AddAnotherMaxItems != nil && *q.AddAnotherMinItems > *q.AddAnotherMaxItems {
			errs = append(errs, "Minimum number cannot be greater than maximum number")
		}
		if q.AddAnotherMaxItems != nil && *q.AddAnotherMaxItems < 1 {
			errs = append(errs, "Maximum number must be at least 1")
		}
	}

	return errs
}
