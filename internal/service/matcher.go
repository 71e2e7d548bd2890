package service

import (
	"strings"

	"github.com/ahanak/SeafileLinkScript/internal/dto"
)

// MatchRepository decides which repository a local file belongs to. Each
// repository name is looked up as a full path segment (a separator must
// bound it on both sides); the right-most occurrence in the path wins for
// that repository, and across repositories the one leaving the strictly
// shortest relative path is kept, earlier list entries winning ties.
//
// Repository names are not unique across a filesystem, so this stays a
// heuristic: an unrelated directory that happens to carry a repository's
// name produces a match too.
func MatchRepository(repos []dto.Repository, absPath string) dto.Match {
	var best dto.Match
	for _, repo := range repos {
		rel, ok := relativeTo(absPath, repo.Name)
		if !ok {
			continue
		}
		if !best.Found() || len(rel) < len(best.Path) {
			best = dto.Match{RepoID: repo.ID, Path: rel}
		}
	}
	return best
}

// relativeTo strips everything up to and including the right-most "/name/"
// segment of path and restores a single leading separator.
func relativeTo(path, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	segment := "/" + name + "/"
	idx := strings.LastIndex(path, segment)
	if idx < 0 {
		return "", false
	}
	return "/" + path[idx+len(segment):], true
}
