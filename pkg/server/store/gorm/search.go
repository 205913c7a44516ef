package gorm

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a contains pattern for ILIKE. The LIKE
// metacharacters in the search term are escaped so it matches literally.
func likePattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}
