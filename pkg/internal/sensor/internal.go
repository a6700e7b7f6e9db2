package sensor

func (s *Sensor[A]) incrementMeterCounters(metric string) {
	for _, m := range s.meters {
		m.IncrementCount(metric)
	}
}

func (s *Sensor[A]) recordMeterSample(nodes float64) {
	for _, m := range s.meters {
		m.RecordMapSample(nodes)
	}
}
