package persist

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadgraph/graph"
)

const (
	// AbsTolDistanceMeters is the round-trip tolerance on a loaded edge's
	// distance field.
	AbsTolDistanceMeters = 10.0

	// AbsTolTravelTimeHours is the round-trip tolerance on a loaded
	// edge's travel_time field.
	AbsTolTravelTimeHours = 1e-3
)

// Write serializes g, along with the parameters it was built under, to w
// in this package's canonical text format.
func Write(w io.Writer, g *graph.Graph, weightType graph.WeightType, protectedIDs []int64, prunedClasses graph.RoadClassSet) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, string(weightType))
	fmt.Fprintln(bw, joinIDs(protectedIDs))
	fmt.Fprintln(bw, joinClasses(prunedClasses))

	vertices := g.Vertices()
	fmt.Fprintf(bw, "V %d\n", len(vertices))
	for _, v := range vertices {
		fmt.Fprintln(bw, v.ID())
		c := v.Coordinates()
		fmt.Fprintf(bw, "%s %s\n", formatFloat(c.Lat), formatFloat(c.Lon))
	}

	edges := g.Edges()
	fmt.Fprintf(bw, "E %d\n", len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "e %d %d\n", e.StartID(), e.EndID())
		fmt.Fprintln(bw, joinIDs(e.OGFIDs()))
		fmt.Fprintf(bw, "d %s\n", formatFloat(e.DistanceMeters()))
		fmt.Fprintf(bw, "t %s\n", formatFloat(e.TravelTime()))
		for _, seg := range e.Segments() {
			fmt.Fprintf(bw, "S %d\n", seg.OGFID())
			fmt.Fprintln(bw, formatFloat(seg.LengthMeters()))
			fmt.Fprintln(bw, string(seg.RoadClassOf()))
			fmt.Fprintln(bw, seg.SpeedLimitKPH())
			fmt.Fprintln(bw, joinCoordinates(seg.Coordinates()))
			fmt.Fprintln(bw, seg.Name())
		}
	}

	fmt.Fprintln(bw, "END")

	return bw.Flush()
}

// Load parses r and returns the encoded graph, but only if the header's
// weight type, protected-id set, and pruned-class set exactly match the
// caller's. A structural defect anywhere in the body is
// ErrCorruption; a header mismatch is ErrFormatMismatch.
func Load(r io.Reader, weightType graph.WeightType, protectedIDs []int64, prunedClasses graph.RoadClassSet) (*graph.Graph, error) {
	ls := newLineScanner(r)

	gotWeightType, err := ls.next()
	if err != nil {
		return nil, fmt.Errorf("persist: reading weight type: %w", err)
	}
	gotProtected, err := ls.next()
	if err != nil {
		return nil, fmt.Errorf("persist: reading protected ids: %w", err)
	}
	gotClasses, err := ls.next()
	if err != nil {
		return nil, fmt.Errorf("persist: reading pruned classes: %w", err)
	}

	if gotWeightType != string(weightType) ||
		gotProtected != joinIDs(protectedIDs) ||
		gotClasses != joinClasses(prunedClasses) {
		return nil, ErrFormatMismatch
	}

	g := graph.NewGraph()

	vertexCount, err := ls.readCountLine("V")
	if err != nil {
		return nil, err
	}
	for i := 0; i < vertexCount; i++ {
		idLine, err := ls.next()
		if err != nil {
			return nil, fmt.Errorf("persist: vertex %d: %w", i, err)
		}
		id, err := strconv.ParseInt(idLine, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("persist: vertex %d id: %w: %v", i, ErrCorruption, err)
		}
		coordLine, err := ls.next()
		if err != nil {
			return nil, fmt.Errorf("persist: vertex %d coords: %w", i, err)
		}
		fields := strings.Fields(coordLine)
		if len(fields) != 2 {
			return nil, fmt.Errorf("persist: vertex %d: %w: bad coordinate line", i, ErrCorruption)
		}
		lat, errLat := strconv.ParseFloat(fields[0], 64)
		lon, errLon := strconv.ParseFloat(fields[1], 64)
		if errLat != nil || errLon != nil {
			return nil, fmt.Errorf("persist: vertex %d: %w: bad coordinate values", i, ErrCorruption)
		}
		g.AddVertex(id, graph.Coordinate{Lat: lat, Lon: lon}, "")
	}

	edgeCount, err := ls.readCountLine("E")
	if err != nil {
		return nil, err
	}
	for i := 0; i < edgeCount; i++ {
		if err := loadEdge(ls, g, weightType); err != nil {
			return nil, fmt.Errorf("persist: edge %d: %w", i, err)
		}
	}

	end, err := ls.next()
	if err != nil {
		return nil, fmt.Errorf("persist: reading END: %w", err)
	}
	if end != "END" {
		return nil, fmt.Errorf("persist: %w: expected END, got %q", ErrCorruption, end)
	}

	return g, nil
}

func loadEdge(ls *lineScanner, g *graph.Graph, weightType graph.WeightType) error {
	header, err := ls.next()
	if err != nil {
		return err
	}
	fields := strings.Fields(header)
	if len(fields) != 3 || fields[0] != "e" {
		return fmt.Errorf("%w: expected 'e start end', got %q", ErrCorruption, header)
	}
	start, errS := strconv.ParseInt(fields[1], 10, 64)
	end, errE := strconv.ParseInt(fields[2], 10, 64)
	if errS != nil || errE != nil {
		return fmt.Errorf("%w: bad edge endpoints in %q", ErrCorruption, header)
	}

	ogfLine, err := ls.next()
	if err != nil {
		return err
	}
	ogfIDs, err := parseIDs(ogfLine)
	if err != nil {
		return fmt.Errorf("%w: bad ogf id list: %v", ErrCorruption, err)
	}

	distance, err := ls.readTaggedFloat("d")
	if err != nil {
		return err
	}
	travelTime, err := ls.readTaggedFloat("t")
	if err != nil {
		return err
	}

	var segments []graph.Segment
	var summedLength, computedTravelTime float64
	for {
		tagLine, err := ls.peek()
		if err != nil {
			return err
		}
		if !strings.HasPrefix(tagLine, "S ") {
			break
		}
		seg, err := loadSegment(ls)
		if err != nil {
			return err
		}
		segments = append(segments, seg)
		summedLength += seg.LengthMeters()
		computedTravelTime += seg.TravelTimeHours()
	}
	if len(segments) == 0 {
		return fmt.Errorf("%w: edge %d->%d has no segments", ErrCorruption, start, end)
	}

	if math.Abs(distance-summedLength) > AbsTolDistanceMeters {
		return fmt.Errorf("%w: edge %d->%d distance %.3f vs segment sum %.3f exceeds tolerance", ErrCorruption, start, end, distance, summedLength)
	}
	if math.Abs(travelTime-computedTravelTime) > AbsTolTravelTimeHours {
		return fmt.Errorf("%w: edge %d->%d travel_time %.6f vs derived %.6f exceeds tolerance", ErrCorruption, start, end, travelTime, computedTravelTime)
	}

	return g.AddEdgeWithSegments(start, end, ogfIDs, distance, weightType, segments)
}

func loadSegment(ls *lineScanner) (graph.Segment, error) {
	header, err := ls.next()
	if err != nil {
		return graph.Segment{}, err
	}
	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "S" {
		return graph.Segment{}, fmt.Errorf("%w: expected 'S ogf_id', got %q", ErrCorruption, header)
	}
	ogfID, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return graph.Segment{}, fmt.Errorf("%w: bad segment ogf id in %q", ErrCorruption, header)
	}

	lengthLine, err := ls.next()
	if err != nil {
		return graph.Segment{}, err
	}
	length, err := strconv.ParseFloat(lengthLine, 64)
	if err != nil {
		return graph.Segment{}, fmt.Errorf("%w: bad segment length %q", ErrCorruption, lengthLine)
	}

	roadClassLine, err := ls.next()
	if err != nil {
		return graph.Segment{}, err
	}

	speedLine, err := ls.next()
	if err != nil {
		return graph.Segment{}, err
	}
	speed, err := strconv.Atoi(speedLine)
	if err != nil {
		return graph.Segment{}, fmt.Errorf("%w: bad segment speed %q", ErrCorruption, speedLine)
	}

	coordLine, err := ls.next()
	if err != nil {
		return graph.Segment{}, err
	}
	coords, err := parseCoordinates(coordLine)
	if err != nil {
		return graph.Segment{}, fmt.Errorf("%w: bad segment coordinates: %v", ErrCorruption, err)
	}

	nameLine, err := ls.next()
	if err != nil {
		return graph.Segment{}, err
	}

	seg, err := graph.NewSegment(ogfID, nameLine, length, graph.RoadClass(roadClassLine), speed, coords)
	if err != nil {
		return graph.Segment{}, fmt.Errorf("%w: %v", ErrCorruption, err)
	}

	return seg, nil
}

func joinIDs(ids []int64) string {
	sorted := append([]int64(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, " ")
}

func parseIDs(line string) ([]int64, error) {
	if line == "" {
		return nil, nil
	}
	fields := strings.Fields(line)
	out := make([]int64, len(fields))
	for i, f := range fields {
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}

	return out, nil
}

func joinClasses(classes graph.RoadClassSet) string {
	parts := make([]string, 0, len(classes))
	for c := range classes {
		parts = append(parts, string(c))
	}
	sort.Strings(parts)

	return strings.Join(parts, "|")
}

func joinCoordinates(coords []graph.Coordinate) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = formatFloat(c.Lat) + "," + formatFloat(c.Lon)
	}

	return strings.Join(parts, " ")
}

func parseCoordinates(line string) ([]graph.Coordinate, error) {
	fields := strings.Fields(line)
	out := make([]graph.Coordinate, len(fields))
	for i, f := range fields {
		pair := strings.Split(f, ",")
		if len(pair) != 2 {
			return nil, fmt.Errorf("bad coordinate pair %q", f)
		}
		lat, errLat := strconv.ParseFloat(pair[0], 64)
		lon, errLon := strconv.ParseFloat(pair[1], 64)
		if errLat != nil || errLon != nil {
			return nil, fmt.Errorf("bad coordinate values %q", f)
		}
		out[i] = graph.Coordinate{Lat: lat, Lon: lon}
	}

	return out, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// lineScanner wraps bufio.Scanner with one line of lookahead, needed to
// detect the end of a variable-length run of S-blocks.
type lineScanner struct {
	sc      *bufio.Scanner
	pending *string
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &lineScanner{sc: sc}
}

func (ls *lineScanner) next() (string, error) {
	if ls.pending != nil {
		line := *ls.pending
		ls.pending = nil

		return line, nil
	}
	if !ls.sc.Scan() {
		if err := ls.sc.Err(); err != nil {
			return "", err
		}

		return "", fmt.Errorf("%w: unexpected end of input", ErrCorruption)
	}

	return ls.sc.Text(), nil
}

func (ls *lineScanner) peek() (string, error) {
	if ls.pending == nil {
		line, err := ls.next()
		if err != nil {
			return "", err
		}
		ls.pending = &line
	}

	return *ls.pending, nil
}

func (ls *lineScanner) readCountLine(tag string) (int, error) {
	line, err := ls.next()
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != tag {
		return 0, fmt.Errorf("%w: expected '%s <count>', got %q", ErrCorruption, tag, line)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: bad count in %q", ErrCorruption, line)
	}

	return n, nil
}

func (ls *lineScanner) readTaggedFloat(tag string) (float64, error) {
	line, err := ls.next()
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != tag {
		return 0, fmt.Errorf("%w: expected '%s <value>', got %q", ErrCorruption, tag, line)
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad value in %q", ErrCorruption, line)
	}

	return v, nil
}
