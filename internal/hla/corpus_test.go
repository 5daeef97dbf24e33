package hla

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorpus_DerivedUniverses(t *testing.T) {
	corpus := NewCorpus()

	s1 := NewSampleRecord("S1")
	r1 := NewMethodResult()
	r1.Add(unranked("A", "HLA-A*01:01"))
	r1.Add(unranked("DRB1", "HLA-DRB1*15:01"))
	s1.Results[MethodHISAT] = r1

	s2 := NewSampleRecord("S2")
	r2 := NewMethodResult()
	r2.Add(unranked("B", "HLA-B*07:02"))
	s2.Results[MethodOptiType] = r2

	// S3 contributed nothing; still a valid record.
	s3 := NewSampleRecord("S3")

	corpus.Insert(s2)
	corpus.Insert(s1)
	corpus.Insert(s3)

	assert.Equal(t, []string{"S1", "S2", "S3"}, corpus.SampleIDs())
	// Union across every sample and method present, not a fixed universe.
	assert.Equal(t, []string{"A", "B", "DRB1"}, corpus.Genes())
}

func TestCorpus_Empty(t *testing.T) {
	corpus := NewCorpus()
	assert.Empty(t, corpus.SampleIDs())
	assert.Empty(t, corpus.Genes())
}

func TestSampleRecord_AbsentVsEmpty(t *testing.T) {
	rec := NewSampleRecord("S1")
	rec.Results[MethodEstimation] = NewMethodResult()

	// Attempted with zero calls is a present, empty result; not attempted
	// is a nil lookup.
	assert.NotNil(t, rec.Method(MethodEstimation))
	assert.True(t, rec.Method(MethodEstimation).Empty())
	assert.Nil(t, rec.Method(MethodHISAT))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "HISAT-genotype", DisplayName(MethodHISAT))
	assert.Equal(t, "HLA-HD", DisplayName(MethodEstimation))
	assert.Equal(t, "OptiType", DisplayName(MethodOptiType))
	assert.Equal(t, "HLA-LA", DisplayName(MethodHLALA))
	assert.Equal(t, "other", DisplayName("other"))
}
