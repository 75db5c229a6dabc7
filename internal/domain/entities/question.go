package entities

import (
	"strings"
	"time"
)

type QuestionType string

const (
	QuestionTypeText       QuestionType = "text"
	QuestionTypeYesNo      QuestionType = "yesno"
	QuestionTypeNumber     QuestionType = "number"
	QuestionTypeSelection  QuestionType = "selection"
	QuestionTypeDate       QuestionType = "date"
	QuestionTypeEmail      QuestionType = "email"
	QuestionTypePhone      QuestionType = "phone"
	QuestionTypeAddress    QuestionType = "address"
	QuestionTypeFile       QuestionType = "file"
	QuestionTypeAddAnother QuestionType = "addanother"
)

var humanQuestionTypes = map[QuestionType]string{
	QuestionTypeText:       "Text",
	QuestionTypeYesNo:      "Yes or no",
	QuestionTypeNumber:     "Number",
	QuestionTypeSelection:  "Single option",
	QuestionTypeDate:       "Date",
	QuestionTypeEmail:      "Email address",
	QuestionTypePhone:      "Phone number",
	QuestionTypeAddress:    "Address",
	QuestionTypeFile:       "File upload",
	QuestionTypeAddAnother: "Add another",
}

// QuestionTypes lists every supported question type in form order
func QuestionTypes() []QuestionType {
	return []QuestionType{
		QuestionTypeText, QuestionTypeYesNo, QuestionTypeNumber, QuestionTypeSelection, QuestionTypeDate,
		QuestionTypeEmail, QuestionTypePhone, QuestionTypeAddress, QuestionTypeFile, QuestionTypeAddAnother,
	}
}

// IsValid checks the type against the fixed enumeration
func (t QuestionType) IsValid() bool {
	_, ok := humanQuestionTypes[t]
	return ok
}

// Human returns the label shown in question lists
func (t QuestionType) Human() string {
	return humanQuestionTypes[t]
}

// Question is a single form question inside a task
type Question struct {
	ID                string       `json:"id"`
	QuestionName      string       `json:"questionName"`
	QuestionText      string       `json:"questionText,omitempty"`
	QuestionHint      string       `json:"questionHint,omitempty"`
	QuestionType      QuestionType `json:"questionType"`
	HumanQuestionType string       `json:"humanQuestionType,omitempty"`
	IsRequired        bool         `json:"isRequired"`
	CreatedDate       time.Time    `json:"createdDate"`
	QuestionConfig
}

// QuestionConfig holds the type-specific options. Only the fields relevant
// to the question's type are expected to be set; pointer fields keep an
// explicit zero distinguishable from "not given".
type QuestionConfig struct {
	// text
	TextType         string `json:"textType,omitempty"`
	TextPrefix       string `json:"textPrefix,omitempty"`
	TextSuffix       string `json:"textSuffix,omitempty"`
	TextAutocomplete string `json:"textAutocomplete,omitempty"`
	CharacterLimit   *int   `json:"characterLimit,omitempty"`
	TextareaRows     string `json:"textareaRows,omitempty"`
	InputWidth       string `json:"inputWidth,omitempty"`

	// number
	NumberPrefix     string   `json:"numberPrefix,omitempty"`
	NumberSuffix     string   `json:"numberSuffix,omitempty"`
	AllowDecimals    bool     `json:"allowDecimals,omitempty"`
	MinValue         *float64 `json:"minValue,omitempty"`
	MaxValue         *float64 `json:"maxValue,omitempty"`
	StepValue        *float64 `json:"stepValue,omitempty"`
	NumberInputWidth string   `json:"numberInputWidth,omitempty"`

	// selection
	SelectionType         string   `json:"selectionType,omitempty"`
	SelectionOptions      string   `json:"selectionOptions,omitempty"`
	SelectionOptionsArray []string `json:"selectionOptionsArray,omitempty"`
	SelectionLayout       string   `json:"selectionLayout,omitempty"`
	SelectionSize         string   `json:"selectionSize,omitempty"`
	IncludeOtherOption    bool     `json:"includeOtherOption,omitempty"`
	OtherOptionText       string   `json:"otherOptionText,omitempty"`

	// date
	DateInputType      string `json:"dateInputType,omitempty"`
	IncludePastDates   bool   `json:"includePastDates,omitempty"`
	IncludeFutureDates bool   `json:"includeFutureDates,omitempty"`
	EarliestDate       string `json:"earliestDate,omitempty"`
	LatestDate         string `json:"latestDate,omitempty"`

	// email
	EmailAutocomplete   string `json:"emailAutocomplete,omitempty"`
	AllowMultipleEmails bool   `json:"allowMultipleEmails,omitempty"`

	// phone
	PhoneType         string `json:"phoneType,omitempty"`
	PhoneAutocomplete string `json:"phoneAutocomplete,omitempty"`

	// address
	AddressType         string `json:"addressType,omitempty"`
	IncludeAddressLine3 bool   `json:"includeAddressLine3,omitempty"`
	RequireCounty       bool   `json:"requireCounty,omitempty"`

	// file
	AcceptedFileTypes      string `json:"acceptedFileTypes,omitempty"`
	MaxFileSize            *int   `json:"maxFileSize,omitempty"`
	AllowMultipleFiles     bool   `json:"allowMultipleFiles,omitempty"`
	MaxFiles               *int   `json:"maxFiles,omitempty"`
	EnableDragDrop         bool   `json:"enableDragDrop,omitempty"`
	RequireFileDescription bool   `json:"requireFileDescription,omitempty"`

	// addanother
	AddAnotherMinItems    *int   `json:"addAnotherMinItems,omitempty"`
	AddAnotherMaxItems    *int   `json:"addAnotherMaxItems,omitempty"`
	AddAnotherShowSummary bool   `json:"addAnotherShowSummary,omitempty"`
	AddAnotherButtonText  string `json:"addAnotherButtonText,omitempty"`
}

// SplitSelectionOptions splits newline-delimited options, trimming each one
// and dropping blank lines.
func SplitSelectionOptions(raw string) []string {
	options := []string{}
	for _, line := range strings.Split(raw, "\n") {
		option := strings.TrimSpace(line)
		if option != "" {
			options = append(options, option)
		}
	}
	return options
}
