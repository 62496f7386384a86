// Package coerce normalizes raw, loosely-typed documents into well-formed
// entities. Every function here is pure and total: missing or malformed
// fields produce defaults, never an error or a panic. A degraded entity is
// always preferred over a failed read.
package coerce

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"sitecms/internal/model"
)

// NoFeatures is the sentinel slice used when a document has no features at
// all. The frontend renders feature lists unconditionally, so an absent field
// becomes a single explanatory entry rather than an empty list.
var NoFeatures = []string{"No features specified"}

// Project converts one raw project document. The id, when present, is taken
// from the document's own "id" key.
func Project(raw map[string]any) model.Project {
	return model.Project{
		Base:         base(raw),
		Title:        str(raw, "title"),
		Description:  str(raw, "description"),
		Category:     str(raw, "category"),
		Technologies: strList(raw["technologies"], nil),
		Features:     strList(raw["features"], NoFeatures),
		ImageURL:     str(raw, "imageUrl"),
		CaseStudyURL: str(raw, "caseStudyUrl"),
		LiveURL:      str(raw, "liveUrl"),
		Order:        order(raw),
		IsActive:     activeFlag(raw),
	}
}

// Service converts one raw service document.
func Service(raw map[string]any) model.Service {
	return model.Service{
		Base:        base(raw),
		Title:       str(raw, "title"),
		Description: str(raw, "description"),
		Icon:        str(raw, "icon"),
		Color:       str(raw, "color"),
		Features:    strList(raw["features"], NoFeatures),
		Order:       order(raw),
		IsActive:    activeFlag(raw),
	}
}

// CompanyStat converts one raw stat document. The value keeps its stored
// polymorphism: numbers (and numeric strings) land in the numeric branch,
// everything else stays a literal string.
func CompanyStat(raw map[string]any) model.CompanyStat {
	return model.CompanyStat{
		Base:     base(raw),
		Label:    str(raw, "label"),
		Value:    statValue(raw["value"]),
		Prefix:   str(raw, "prefix"),
		Suffix:   str(raw, "suffix"),
		Order:    order(raw),
		IsActive: activeFlag(raw),
	}
}

// ContactInfo converts one raw contact-info document. Social links are read
// from the nested socialMedia map when present, falling back to the legacy
// flat fields older documents used.
func ContactInfo(raw map[string]any) model.ContactInfo {
	social := subMap(raw, "socialMedia")
	hours := subMap(raw, "businessHours")
	return model.ContactInfo{
		Base:    base(raw),
		Email:   str(raw, "email"),
		Phone:   str(raw, "phone"),
		Address: str(raw, "address"),
		BusinessHours: model.HoursSummary{
			Weekdays: str(hours, "weekdays"),
			Weekends: str(hours, "weekends"),
		},
		SocialMedia: model.SocialMedia{
			LinkedIn: strFallback(social, raw, "linkedin"),
			GitHub:   strFallback(social, raw, "github"),
			Twitter:  strFallback(social, raw, "twitter"),
			Facebook: strFallback(social, raw, "facebook"),
		},
		IsActive: activeFlag(raw),
	}
}

// BusinessHour converts one raw business-hour document. A missing order falls
// back to the day's weekday rank so the schedule still lists in sequence.
func BusinessHour(raw map[string]any) model.BusinessHour {
	day := str(raw, "day")
	ord := order(raw)
	if _, ok := raw["order"]; !ok {
		ord = model.DayOrder(day)
	}
	return model.BusinessHour{
		Base:      base(raw),
		Day:       day,
		IsOpen:    strictTrue(raw, "isOpen"),
		OpenTime:  str(raw, "openTime"),
		CloseTime: str(raw, "closeTime"),
		Order:     ord,
	}
}

// ContactSubmission converts one raw submission document. Older documents
// split the sender's name into firstName/lastName; both shapes are readable.
func ContactSubmission(raw map[string]any) model.ContactSubmission {
	name := str(raw, "name")
	if name == "" {
		name = strings.TrimSpace(str(raw, "firstName") + " " + str(raw, "lastName"))
	}
	return model.ContactSubmission{
		Base:    base(raw),
		Name:    name,
		Email:   str(raw, "email"),
		Phone:   str(raw, "phone"),
		Subject: str(raw, "subject"),
		Message: str(raw, "message"),
		IsRead:  strictTrue(raw, "isRead"),
	}
}

func base(raw map[string]any) model.Base {
	return model.Base{
		ID:        str(raw, "id"),
		CreatedAt: timeVal(raw, "createdAt"),
		UpdatedAt: timeVal(raw, "updatedAt"),
	}
}

func str(raw map[string]any, key string) string {
	if raw == nil {
		return ""
	}
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

// strFallback prefers the nested map and falls back to the same key at the
// top level of the document.
func strFallback(nested, flat map[string]any, key string) string {
	if s := str(nested, key); s != "" {
		return s
	}
	return str(flat, key)
}

func subMap(raw map[string]any, key string) map[string]any {
	if m, ok := raw[key].(map[string]any); ok {
		return m
	}
	return nil
}

// strList materializes a list-typed field. Lists pass through (non-string
// elements are skipped), a single string is split on commas with each segment
// trimmed and empties dropped, and an absent field yields the fallback (or an
// empty slice when fallback is nil). The result is never nil.
func strList(v any, fallback []string) []string {
	switch t := v.(type) {
	case []string:
		if t == nil {
			break
		}
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		out := []string{}
		for _, seg := range strings.Split(t, ",") {
			if s := strings.TrimSpace(seg); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if fallback != nil {
		out := make([]string, len(fallback))
		copy(out, fallback)
		return out
	}
	return []string{}
}

// activeFlag implements the "default true unless explicitly false" policy:
// only a stored boolean false marks the record inactive. Absent fields and
// non-boolean placeholder values all count as active.
func activeFlag(raw map[string]any) bool {
	v, ok := raw["isActive"]
	if !ok {
		return true
	}
	if b, isBool := v.(bool); isBool {
		return b
	}
	return true
}

// strictTrue is the opposite policy, for fields that default to false: only a
// stored boolean true sets the flag.
func strictTrue(raw map[string]any, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

// order reads the display rank, treating missing or non-numeric values as 0.
func order(raw map[string]any) int {
	return intVal(raw["order"])
}

func intVal(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return 0
}

func statValue(v any) model.StatValue {
	switch t := v.(type) {
	case float64:
		return model.NumberValue(t)
	case int:
		return model.NumberValue(float64(t))
	case int64:
		return model.NumberValue(float64(t))
	case json.Number:
		if n, err := t.Float64(); err == nil {
			return model.NumberValue(n)
		}
		return model.TextValue(t.String())
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return model.NumberValue(n)
		}
		return model.TextValue(t)
	case nil:
		return model.TextValue("")
	}
	return model.TextValue("")
}

func timeVal(raw map[string]any, key string) time.Time {
	switch t := raw[key].(type) {
	case time.Time:
		return t
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts
		}
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts
		}
	}
	return time.Time{}
}
