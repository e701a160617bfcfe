package transformer

import (
	"strconv"
	"strings"

	"github.com/Saber-Kurama/learn-pont/internal/naming"
)

// reservedIdentifiers maps operation names that are JavaScript keywords to
// safe replacements.
var reservedIdentifiers = map[string]string{
	"delete":   "remove",
	"export":   "exporting",
	"import":   "importing",
	"new":      "create",
	"function": "functionLoad",
}

// GetMaxSamePath returns the longest common leading segment path of paths
// (given without their leading slash), e.g. ["a/b/c", "a/b/d"] -> "/a/b".
// It stops at the first diverging segment or as soon as any path has no
// segment left to strip.
func GetMaxSamePath(paths []string) string {
	return maxSamePath(paths, "")
}

func maxSamePath(paths []string, prefix string) string {
	if len(paths) == 0 {
		return prefix
	}
	for _, p := range paths {
		if !strings.Contains(p, "/") {
			return prefix
		}
	}
	first, _, _ := strings.Cut(paths[0], "/")
	rest := make([]string, len(paths))
	for i, p := range paths {
		seg, tail, _ := strings.Cut(p, "/")
		if seg != first {
			return prefix
		}
		rest[i] = tail
	}
	return maxSamePath(rest, prefix+"/"+first)
}

// IdentifierFromURL derives an operation name from its method and the part
// of url after samePath: "/user/{id}/avatar.png" with samePath "/user"
// and method "get" gives "getByIdAvatar".
func IdentifierFromURL(url, method, samePath string) string {
	rest := strings.TrimPrefix(url, samePath)
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		rest = rest[:i]
	}

	var b strings.Builder
	b.WriteString(method)
	for _, seg := range strings.Split(rest, "/") {
		if seg == "" {
			continue
		}
		seg = naming.CamelDashes(seg)
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			b.WriteString("By")
			b.WriteString(naming.UpperFirst(seg[1 : len(seg)-1]))
			continue
		}
		b.WriteString(naming.UpperFirst(seg))
	}
	return naming.ToIdentifier(b.String())
}

// IdentifierFromOperationID derives an operation name from its
// operationId, dropping the "Using<METHOD>" suffix springfox appends and
// replacing reserved words.
func IdentifierFromOperationID(operationID string) string {
	id := trimUsingSuffix(operationID)
	if replacement, ok := reservedIdentifiers[id]; ok {
		return replacement
	}
	return naming.ToIdentifier(naming.CamelDashes(id))
}

// trimUsingSuffix cuts at the last "Using" that has text on both sides.
func trimUsingSuffix(id string) string {
	const marker = "Using"
	end := len(id)
	for {
		i := strings.LastIndex(id[:end], marker)
		if i < 0 {
			return id
		}
		if i > 0 && i+len(marker) < len(id) {
			return id[:i]
		}
		end = i
	}
}

// uniqueName returns name, or name followed by the smallest integer >= 2
// that is not in used.
func uniqueName(name string, used map[string]bool) string {
	if !used[name] {
		return name
	}
	for n := 2; ; n++ {
		candidate := name + strconv.Itoa(n)
		if !used[candidate] {
			return candidate
		}
	}
}
