package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/roadnet-api/internal/domain"
)

// MsgNoLinkBetweenNodes is returned when get_links_btwn_nodes found no path.
const MsgNoLinkBetweenNodes = "no link between given nodes"

// geometryBoundary separates the (source,target,{link_dirs}) prefix of the
// record text from its quoted geometry field.
const geometryBoundary = `,"{"`

// LinksBetweenNodesResponse decodes the record text produced by casting the
// result of get_links_btwn_nodes to text. The record has the shape
//
//	(source,target,{link_dir,...},"{""type"":...,""coordinates"":...}")
//
// where the link_dir set is itself quoted when it holds more than one element.
// An empty result (no boundary before the geometry) yields a RequestError of
// kind KindNotFound; any other deviation from the grammar yields
// domain.ErrMalformedAggregate.
func LinksBetweenNodesResponse(text string) (domain.LinksBetweenNodes, error) {
	split := strings.LastIndex(text, geometryBoundary)
	if split < 0 {
		return domain.LinksBetweenNodes{}, domain.NewNotFound(MsgNoLinkBetweenNodes)
	}

	geom, err := aggregateGeometry(text[split+1:])
	if err != nil {
		return domain.LinksBetweenNodes{}, err
	}

	tuple := quoteLinkSet(text[:split] + ")")

	source, target, linkSet, err := readLinkTuple(tuple)
	if err != nil {
		return domain.LinksBetweenNodes{}, err
	}

	linkDirs, err := splitLinkSet(linkSet)
	if err != nil {
		return domain.LinksBetweenNodes{}, err
	}

	return domain.LinksBetweenNodes{
		Source:   source,
		Target:   target,
		LinkDirs: linkDirs,
		Geometry: geom,
	}, nil
}

// aggregateGeometry decodes the geometry field that trails the record: the
// closing parenthesis is dropped, doubled quotes are collapsed, and the
// field's own surrounding quotes are removed.
func aggregateGeometry(segment string) (domain.Geometry, error) {
	if segment == "" {
		return domain.Geometry{}, malformed("empty geometry field")
	}

	field := segment[:len(segment)-1]
	field = strings.ReplaceAll(field, `""`, `"`)
	field = strings.TrimPrefix(field, `"`)
	field = strings.TrimSuffix(field, `"`)

	geom, err := domain.ParseGeometry(field)
	if err != nil {
		return domain.Geometry{}, fmt.Errorf("%w: %v", domain.ErrMalformedAggregate, err)
	}
	return geom, nil
}

// quoteLinkSet wraps a bare {a} link set in quotes. Postgres only quotes the
// array literal when it contains a comma, i.e. when there is more than one link.
func quoteLinkSet(tuple string) string {
	if len(tuple) < 2 {
		return tuple
	}

	switch tuple[len(tuple)-2] {
	case '"', '\'':
		return tuple
	}

	tuple = strings.ReplaceAll(tuple, "{", `"{`)
	return strings.ReplaceAll(tuple, "}", `}"`)
}

// readLinkTuple reads `( int , int , "{...}" )` and returns the two node ids
// and the brace-delimited link set with its quotes removed.
func readLinkTuple(tuple string) (int64, int64, string, error) {
	r := &tupleReader{s: tuple}

	if err := r.expect('('); err != nil {
		return 0, 0, "", err
	}
	source, err := r.readInt()
	if err != nil {
		return 0, 0, "", err
	}
	if err := r.expect(','); err != nil {
		return 0, 0, "", err
	}
	target, err := r.readInt()
	if err != nil {
		return 0, 0, "", err
	}
	if err := r.expect(','); err != nil {
		return 0, 0, "", err
	}
	linkSet, err := r.readQuoted()
	if err != nil {
		return 0, 0, "", err
	}
	if err := r.expect(')'); err != nil {
		return 0, 0, "", err
	}
	if err := r.end(); err != nil {
		return 0, 0, "", err
	}

	return source, target, linkSet, nil
}

// splitLinkSet turns "{a,b,c}" into [a b c]. An empty set yields an empty slice.
func splitLinkSet(linkSet string) ([]string, error) {
	if len(linkSet) < 2 || linkSet[0] != '{' || linkSet[len(linkSet)-1] != '}' {
		return nil, malformed(fmt.Sprintf("link set %q is not brace-delimited", linkSet))
	}

	inner := linkSet[1 : len(linkSet)-1]
	if inner == "" {
		return []string{}, nil
	}
	return strings.Split(inner, ","), nil
}

func malformed(detail string) error {
	return fmt.Errorf("%w: %s", domain.ErrMalformedAggregate, detail)
}

// tupleReader is a cursor over the fixed three-field record grammar.
type tupleReader struct {
	s   string
	pos int
}

func (r *tupleReader) skipSpace() {
	for r.pos < len(r.s) && (r.s[r.pos] == ' ' || r.s[r.pos] == '\t') {
		r.pos++
	}
}

func (r *tupleReader) expect(c byte) error {
	r.skipSpace()
	if r.pos >= len(r.s) || r.s[r.pos] != c {
		return malformed(fmt.Sprintf("expected %q at offset %d", c, r.pos))
	}
	r.pos++
	return nil
}

func (r *tupleReader) readInt() (int64, error) {
	r.skipSpace()
	start := r.pos
	if r.pos < len(r.s) && (r.s[r.pos] == '-' || r.s[r.pos] == '+') {
		r.pos++
	}
	for r.pos < len(r.s) && r.s[r.pos] >= '0' && r.s[r.pos] <= '9' {
		r.pos++
	}

	n, err := strconv.ParseInt(r.s[start:r.pos], 10, 64)
	if err != nil {
		return 0, malformed(fmt.Sprintf("expected integer at offset %d", start))
	}
	return n, nil
}

func (r *tupleReader) readQuoted() (string, error) {
	r.skipSpace()
	if r.pos >= len(r.s) || (r.s[r.pos] != '"' && r.s[r.pos] != '\'') {
		return "", malformed(fmt.Sprintf("expected quoted link set at offset %d", r.pos))
	}

	quote := r.s[r.pos]
	r.pos++
	end := strings.IndexByte(r.s[r.pos:], quote)
	if end < 0 {
		return "", malformed("unterminated link set")
	}

	value := r.s[r.pos : r.pos+end]
	r.pos += end + 1
	return value, nil
}

func (r *tupleReader) end() error {
	r.skipSpace()
	if r.pos != len(r.s) {
		return malformed(fmt.Sprintf("unexpected trailing text at offset %d", r.pos))
	}
	return nil
}
