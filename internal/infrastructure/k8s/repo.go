package k8s

import (
	"context"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"
	metricsclient "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/HaPhanBaoMinh/ktoast/internal/domain"
)

// Repo builds snapshots straight from a cluster, skipping the aggregated
// feed: pod cpu in millicores and memory in MiB, node usage as fractions
// of allocatable. Pods without metrics carry the missing-cpu sentinel so
// they render as the missing variant rather than a cold toast.
type Repo struct {
	core    *kubernetes.Clientset
	metrics *metricsclient.Clientset
}

func New(kubeconfigPath, contextName string) (*Repo, error) {
	cfg, err := loadRESTConfig(kubeconfigPath, contextName)
	if err != nil {
		return nil, err
	}
	cfg.QPS = 30
	cfg.Burst = 60
	core, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, err
	}
	m, err := metricsclient.NewForConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Repo{core: core, metrics: m}, nil
}

func loadRESTConfig(kubeconfigPath, contextName string) (*rest.Config, error) {
	if cfg, err := rest.InClusterConfig(); err == nil {
		return cfg, nil
	}
	loadingRules := &clientcmd.ClientConfigLoadingRules{ExplicitPath: kubeconfigPath}
	overrides := &clientcmd.ConfigOverrides{}
	if contextName != "" {
		overrides.CurrentContext = contextName
	}
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides).ClientConfig()
}

func (r *Repo) Fetch(ctx context.Context) (domain.Snapshot, error) {
	pods, err := r.listPods(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	nodes, err := r.listNodes(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Snapshot{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Pods:      pods,
		Nodes:     nodes,
		Source:    domain.SourceRemote,
	}, nil
}

func (r *Repo) listPods(ctx context.Context) ([]domain.Entity, error) {
	pods, err := r.core.CoreV1().Pods("").List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}

	// Pod usage via metrics.k8s.io; degrade to "no data" if unavailable.
	pms, err := r.metrics.MetricsV1beta1().PodMetricses("").List(ctx, metav1.ListOptions{})
	if err != nil {
		pms = &metricsv1beta1.PodMetricsList{}
	}

	type usage struct {
		cpuMil int64
		memB   int64
	}
	podUsage := map[string]usage{}
	for _, m := range pms.Items {
		var u usage
		for _, c := range m.Containers {
			if q, ok := c.Usage[corev1.ResourceCPU]; ok {
				qq := q
				u.cpuMil += qq.MilliValue()
			}
			if q, ok := c.Usage[corev1.ResourceMemory]; ok {
				qq := q
				u.memB += qq.Value()
			}
		}
		podUsage[m.Namespace+"/"+m.Name] = u
	}

	out := make([]domain.Entity, 0, len(pods.Items))
	for _, p := range pods.Items {
		e := domain.Entity{
			Name:      p.Name,
			Namespace: p.Namespace,
		}
		if u, ok := podUsage[p.Namespace+"/"+p.Name]; ok {
			e.CPUUsage = domain.CPUValue{Value: float64(u.cpuMil)}
			e.MemoryUsage = float64(u.memB) / (1024 * 1024)
		} else {
			e.CPUUsage = domain.CPUValue{Missing: true}
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *Repo) listNodes(ctx context.Context) ([]domain.Entity, error) {
	nodes, err := r.core.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}

	nms, err := r.metrics.MetricsV1beta1().NodeMetricses().List(ctx, metav1.ListOptions{})
	if err != nil {
		nms = &metricsv1beta1.NodeMetricsList{}
	}
	usage := map[string]corev1.ResourceList{}
	for _, m := range nms.Items {
		usage[m.Name] = m.Usage
	}

	out := make([]domain.Entity, 0, len(nodes.Items))
	for _, n := range nodes.Items {
		allocCPU := n.Status.Allocatable.Cpu().MilliValue()
		allocMem := n.Status.Allocatable.Memory().Value()

		e := domain.Entity{Name: n.Name}
		u, ok := usage[n.Name]
		if !ok {
			e.CPUUsage = domain.CPUValue{Missing: true}
			out = append(out, e)
			continue
		}
		if q, ok := u[corev1.ResourceCPU]; ok {
			qq := q // addressable copy for the pointer receiver
			e.CPUUsage = domain.CPUValue{Value: clamp01(float64(qq.MilliValue()) / float64(max64(1, allocCPU)))}
		} else {
			e.CPUUsage = domain.CPUValue{Missing: true}
		}
		if q, ok := u[corev1.ResourceMemory]; ok {
			qq := q
			e.MemoryUsage = clamp01(float64(qq.Value()) / float64(max64(1, allocMem)))
		}
		out = append(out, e)
	}
	return out, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
