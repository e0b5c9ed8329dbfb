package vector

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// Statistics summarizes a vector's storage and relocation history.
type Statistics struct {
	Length          int
	Capacity        int
	GrowthCount     int
	MoveRelocations int
	CopyRelocations int
}

func (s *Statistics) Clear() {
	s.Length = 0
	s.Capacity = 0
	s.GrowthCount = 0
	s.MoveRelocations = 0
	s.CopyRelocations = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.Length += other.Length
	s.Capacity += other.Capacity
	s.GrowthCount += other.GrowthCount
	s.MoveRelocations += other.MoveRelocations
	s.CopyRelocations += other.CopyRelocations
}

// AddStatistics sums this vector's statistics into the statistics currently
// present in the provided Statistics object.
func (v *Vector[T]) AddStatistics(stats *Statistics) {
	stats.Length += v.length
	stats.Capacity += v.storage.Capacity()
	stats.GrowthCount += v.growthCount
	stats.MoveRelocations += v.moveRelocations
	stats.CopyRelocations += v.copyRelocations
}

// VectorJsonData populates a json object with information about this vector
func (v *Vector[T]) VectorJsonData(json jwriter.ObjectState) {
	json.Name("Length").Int(v.length)
	json.Name("Capacity").Int(v.storage.Capacity())
	json.Name("GrowthCount").Int(v.growthCount)
	json.Name("MoveRelocations").Int(v.moveRelocations)
	json.Name("CopyRelocations").Int(v.copyRelocations)

	blockObj := json.Name("Block").Object()
	v.storage.BlockJsonData(blockObj)
	blockObj.End()
}

// BuildStatsString returns a json document describing this vector's storage
// and relocation history.
func (v *Vector[T]) BuildStatsString() string {
	writer := jwriter.NewWriter()

	obj := writer.Object()
	v.VectorJsonData(obj)
	obj.End()

	return string(writer.Bytes())
}
