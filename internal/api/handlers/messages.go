package handlers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-RoomAssignmentService/internal/availability"
)

const msgMaintenance = "обслуживание"

// префиксы вида "create_assignment: " или "domain: "
var pkgPrefix = regexp.MustCompile(`^(?:[a-z_.]+: )+`)

// InputErrorMessage дополняет base пояснением из err без текста sentinel-ошибки и префиксов пакетов
func InputErrorMessage(base string, err, sentinel error) string {
	detail := strings.TrimPrefix(err.Error(), sentinel.Error())
	detail = strings.TrimPrefix(detail, ": ")
	detail = pkgPrefix.ReplaceAllString(detail, "")
	if detail == "" {
		return base
	}
	return base + ": " + detail
}

// ConflictMessage называет номер, занявшую его организацию и даты, если err содержит *availability.ConflictError
func ConflictMessage(base string, err error) string {
	var conflict *availability.ConflictError
	if !errors.As(err, &conflict) {
		return base
	}

	who := conflict.Conflicting.Organization
	if conflict.Conflicting.IsMaintenance() {
		who = msgMaintenance
	}
	return fmt.Sprintf("%s: номер %d, %s, %s", base, conflict.Conflicting.RoomID, who, conflict.Conflicting.Interval)
}
