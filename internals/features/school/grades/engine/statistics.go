package engine

// Bucket is one fixed percentage range of the grade distribution.
type Bucket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// bucket bounds, highest first
var bucketBounds = []struct {
	label    string
	min, max float64
}{
	{"90-100", 90, 100},
	{"80-89", 80, 89},
	{"70-79", 70, 79},
	{"60-69", 60, 69},
	{"0-59", 0, 59},
}

// GradePercentage is finalGrade relative to maxPoints (10 when unset), in percent.
func GradePercentage(finalGrade, maxPoints float64) float64 {
	return finalGrade / scaleOr(maxPoints) * 100
}

// Distribution counts percentages into the fixed ranges. A value between two
// ranges (e.g. 89.5) falls into the lower one.
func Distribution(percentages []float64) []Bucket {
	out := make([]Bucket, len(bucketBounds))
	for i, b := range bucketBounds {
		out[i] = Bucket{Label: b.label, Min: b.min, Max: b.max}
	}
	for _, p := range percentages {
		for i, b := range bucketBounds {
			if p >= b.min || i == len(bucketBounds)-1 {
				out[i].Count++
				break
			}
		}
	}
	return out
}

// ClassStatistics summarizes per-student grades of one class and subject.
// PassingRate is a percentage in 0–100.
type ClassStatistics struct {
	ClassAverage float64 `json:"classAverage"`
	HighestGrade float64 `json:"highestGrade"`
	LowestGrade  float64 `json:"lowestGrade"`
	PassingRate  float64 `json:"passingRate"`
}

// ComputeClassStatistics returns zeroed statistics for an empty list.
func ComputeClassStatistics(grades []float64) ClassStatistics {
	if len(grades) == 0 {
		return ClassStatistics{}
	}
	st := ClassStatistics{HighestGrade: grades[0], LowestGrade: grades[0]}
	var sum float64
	passing := 0
	for _, g := range grades {
		sum += g
		if g > st.HighestGrade {
			st.HighestGrade = g
		}
		if g < st.LowestGrade {
			st.LowestGrade = g
		}
		if g >= PassingGrade {
			passing++
		}
	}
	st.ClassAverage = sum / float64(len(grades))
	st.PassingRate = float64(passing) / float64(len(grades)) * 100
	return st
}
