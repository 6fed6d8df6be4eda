package agent

import (
	"hash/fnv"
	"regexp"
	"strconv"
)

var summaryRe = regexp.MustCompile(`RESULT game=(\S+) agent=(\S+) score=(\d+)/(\d+) moves=(\d+) status=(won|lost)`)

// ParseSummary recovers a Result from a Summary line. External submissions
// report their outcome by printing one; the runner is allowed to miss it.
func ParseSummary(line string) (Result, bool) {
	m := summaryRe.FindStringSubmatch(line)
	if m == nil {
		return Result{}, false
	}
	score, _ := strconv.Atoi(m[3])
	maxScore, _ := strconv.Atoi(m[4])
	moves, _ := strconv.Atoi(m[5])
	return Result{
		Game:     m[1],
		Agent:    m[2],
		Score:    score,
		MaxScore: maxScore,
		Moves:    moves,
		Victory:  m[6] == "won",
	}, true
}

// DeriveSeed computes the seed for one episode. A zero base seed derives a
// stable seed from the game name so default runs are still reproducible.
func DeriveSeed(gameName string, base int64, episode int) int64 {
	if base == 0 {
		h := fnv.New64a()
		h.Write([]byte(gameName))
		base = int64(h.Sum64() & 0x7fffffffffffffff)
	}
	return base + int64(episode)
}
