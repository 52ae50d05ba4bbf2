package edge

import (
	"errors"
	"fmt"
	"time"

	"github.com/j143/geomag-algorithms/internal/ports"
	"github.com/j143/geomag-algorithms/internal/timeseries"
)

const defaultTag = "GeomagAlg"

// Request selects observatory data for one Get or Put call. Zero
// fields fall back to the adapter configuration.
type Request struct {
	Observatory string
	Channels    []string
	DataType    string
	Interval    string
	Location    string
}

// Config carries the Edge node endpoints and the default selection
// applied when a request leaves fields unset.
type Config struct {
	Host         string   `yaml:"host"`
	Port         int      `yaml:"port"`
	CWBHost      string   `yaml:"cwb_host"`
	CWBPort      int      `yaml:"cwb_port"`
	Tag          string   `yaml:"tag"`
	Observatory  string   `yaml:"observatory"`
	Channels     []string `yaml:"channels"`
	DataType     string   `yaml:"data_type"`
	Interval     string   `yaml:"interval"`
	LocationCode string   `yaml:"location_code"`
}

func (c *Config) ApplyDefaults() {
	if c.Tag == "" {
		c.Tag = defaultTag
	}
	if len(c.Channels) == 0 {
		c.Channels = []string{"H", "E", "Z", "F"}
	}
	if c.DataType == "" {
		c.DataType = "variation"
	}
	if c.Interval == "" {
		c.Interval = "minute"
	}
}

func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("host is required")
	}
	if c.Port <= 0 {
		return errors.New("port is required")
	}
	if _, err := IntervalCode(c.Interval); err != nil {
		return err
	}
	for _, ch := range c.Channels {
		if _, err := ChannelCode(ch, c.Interval); err != nil {
			return err
		}
	}
	if _, err := LocationCode(c.DataType, c.LocationCode); err != nil {
		return err
	}
	return nil
}

// Adapter reads and writes observatory time series through an Edge
// node. Reads go through a long lived wave server client, writes open
// one raw input session per call.
type Adapter struct {
	cfg  Config
	ws   ports.WaveServer
	dial ports.RawInputDialer
	meta ports.MetadataAttacher
	obs  ports.Observability
}

func New(cfg Config, ws ports.WaveServer, dial ports.RawInputDialer, meta ports.MetadataAttacher, obs ports.Observability) *Adapter {
	cfg.ApplyDefaults()
	if obs == nil {
		obs = nopObs{}
	}
	return &Adapter{cfg: cfg, ws: ws, dial: dial, meta: meta, obs: obs}
}

func (a *Adapter) resolve(r Request) Request {
	if r.Observatory == "" {
		r.Observatory = a.cfg.Observatory
	}
	if len(r.Channels) == 0 {
		r.Channels = a.cfg.Channels
	}
	if r.DataType == "" {
		r.DataType = a.cfg.DataType
	}
	if r.Interval == "" {
		r.Interval = a.cfg.Interval
	}
	if r.Location == "" {
		r.Location = a.cfg.LocationCode
	}
	return r
}

// Get fetches each requested channel over [start, end], inclusive of
// both endpoints, and returns one reconciled trace per channel. Gaps
// are NaN filled and every trace covers the full requested span.
func (a *Adapter) Get(r Request, start, end time.Time) (timeseries.Stream, error) {
	req := a.resolve(r)
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	if a.ws == nil {
		return nil, ErrNoWaveServer
	}

	// Resolve every identity before touching the network.
	ids := make([]ports.WireIdentity, len(req.Channels))
	for i, ch := range req.Channels {
		id, err := IdentityFor(req.Observatory, ch, req.DataType, req.Interval, req.Location)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	var result timeseries.Stream
	for i, ch := range req.Channels {
		id := ids[i]
		queryStart := time.Now()
		st, err := a.ws.Query(id.Network, id.Station, id.Location, id.Channel, start, end)
		a.obs.ObserveLatency("geomag_query_latency_seconds", time.Since(queryStart).Seconds())
		if err != nil {
			a.obs.LogError("waveserver_query_failed", err,
				ports.Field{Key: "channel", Value: id.Channel})
			return nil, err
		}

		merged, err := st.Merge()
		if err != nil {
			return nil, err
		}
		for _, tr := range merged {
			if a.meta != nil {
				a.meta.Attach(&tr.Stats, req.Observatory, ch, req.DataType, req.Interval)
			}
			a.obs.IncCounter("geomag_samples_read_total", float64(tr.Npts()))
			result = append(result, tr)
		}
	}

	a.postProcess(result, start, end)
	return result, nil
}

// postProcess converts wire counts to physical values, replaces masks
// with NaN and realigns every trace to the requested span.
func (a *Adapter) postProcess(st timeseries.Stream, start, end time.Time) {
	for _, tr := range st {
		ScaleToFloat(tr)
		tr.FillNaN()
		if padded := padToSpan(tr, start, end); padded > 0 {
			a.obs.IncCounter("geomag_gap_samples_padded_total", float64(padded))
		}
	}
}

// Put writes each requested channel of the stream to the Edge node.
// Channels absent from the stream are logged and skipped. The raw
// input session is closed on every exit path.
func (a *Adapter) Put(st timeseries.Stream, r Request) (err error) {
	req := a.resolve(r)
	if a.dial == nil {
		return ErrNoRawInput
	}

	nsamp, timeoffset, sampleRate, err := writeWindowParams(req.Interval)
	if err != nil {
		return err
	}
	// Fail on bad mapping inputs before opening the session.
	for _, ch := range req.Channels {
		if _, err := ChannelCode(ch, req.Interval); err != nil {
			return err
		}
	}
	if _, err := LocationCode(req.DataType, req.Location); err != nil {
		return err
	}

	sess, err := a.dial.Dial(a.cfg.Tag, a.cfg.Host, a.cfg.Port, a.cfg.CWBHost, a.cfg.CWBPort)
	if err != nil {
		a.obs.LogError("rawinput_dial_failed", err)
		return err
	}
	a.obs.SetGauge("geomag_write_sessions_open", 1)
	defer func() {
		a.obs.SetGauge("geomag_write_sessions_open", 0)
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	last, sent, err := a.writeChannels(sess, st, req, nsamp, timeoffset, sampleRate)
	if err != nil {
		return err
	}
	if sent {
		if err := sess.Forceout(last); err != nil {
			return err
		}
	}
	return nil
}

// writeChannels sends every present channel and reports the last
// identity sent so the caller can issue the final flush.
func (a *Adapter) writeChannels(sess ports.RawInput, st timeseries.Stream, req Request, nsamp int, timeoffset time.Duration, sampleRate float64) (last ports.WireIdentity, sent bool, err error) {
	for _, ch := range req.Channels {
		selected := st.Select(ch)
		if len(selected) == 0 {
			a.obs.LogWarn("missing_channel",
				ports.Field{Key: "observatory", Value: req.Observatory},
				ports.Field{Key: "channel", Value: ch})
			a.obs.IncCounter("geomag_missing_channels_total", 1)
			continue
		}
		for _, tr := range selected {
			tr.MaskInvalid()
			for _, seg := range tr.Split() {
				id, segErr := a.putSegment(sess, seg, req, ch, nsamp, timeoffset, sampleRate)
				if segErr != nil {
					return last, sent, segErr
				}
				last = id
				sent = true
			}
		}
	}
	return last, sent, nil
}

// putSegment chunks one gap free segment into protocol windows and
// sends them in order.
func (a *Adapter) putSegment(sess ports.RawInput, seg *timeseries.Trace, req Request, ch string, nsamp int, timeoffset time.Duration, sampleRate float64) (ports.WireIdentity, error) {
	channelCode, err := ChannelCode(ch, req.Interval)
	if err != nil {
		return ports.WireIdentity{}, err
	}

	var id ports.WireIdentity
	for _, w := range chunkTrace(seg, nsamp, timeoffset) {
		// The override location is applied at send time for each window.
		location, err := LocationCode(req.DataType, req.Location)
		if err != nil {
			return id, err
		}
		id = sess.BuildIdentity(Station(req.Observatory), channelCode, location, Network())

		sendStart := time.Now()
		err = sess.Send(id, len(w.samples), ScaleToInt(w.samples), w.start, sampleRate, 0, 0, 0, 0)
		a.obs.ObserveLatency("geomag_send_latency_seconds", time.Since(sendStart).Seconds())
		if err != nil {
			a.obs.LogError("rawinput_send_failed", err,
				ports.Field{Key: "channel", Value: channelCode},
				ports.Field{Key: "start", Value: w.start})
			return id, err
		}
		a.obs.IncCounter("geomag_samples_written_total", float64(len(w.samples)))
		a.obs.IncCounter("geomag_windows_sent_total", 1)
	}
	return id, nil
}

type nopObs struct{}

func (nopObs) LogInfo(string, ...ports.Field)         {}
func (nopObs) LogWarn(string, ...ports.Field)         {}
func (nopObs) LogError(string, error, ...ports.Field) {}
func (nopObs) IncCounter(string, float64)             {}
func (nopObs) ObserveLatency(string, float64)         {}
func (nopObs) SetGauge(string, float64)               {}

var _ ports.Observability = nopObs{}
