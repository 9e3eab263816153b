// Package score implements the dispatch table of the 68 Laplacian
// eigenvalue conjectures this engine searches for counterexamples to. Each
// conjecture claims mu(G) <= f_k(G) for every graph G; Bound computes f_k(G)
// so that callers can test mu(G) - f_k(G) > 0.
package score

import "math"

// Bound evaluates f_k(G) for conjecture conj, given the graph's vertex
// count n, its adjacency matrix adj, degree vector deg, and average
// neighbor degree vector avg. It returns 0 for a graph with no vertex (or
// edge, for edge-based conjectures) to evaluate the bound over.
func Bound(conj, n int, adj [][]float64, deg, avg []float64) float64 {
	switch conj {
	case 1:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(4 * math.Pow(d, 3) / m)
		})
	case 2:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return 2 * math.Pow(m, 2) / d
		})
	case 3:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Pow(m, 2)/d + m
		})
	case 4:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return 2 * math.Pow(d, 2) / m
		})
	case 5:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Pow(d, 2)/m + m
		})
	case 6:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(3*math.Pow(d, 2) + math.Pow(m, 2))
		})
	case 7:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Pow(d, 2)/m + d
		})
	case 8:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(d * (m + 3*d))
		})
	case 9:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return (m + 3*d) / 2
		})
	case 10:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(d * (3*m + d))
		})
	case 11:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return 2 * math.Pow(m, 3) / math.Pow(d, 2)
		})
	case 12:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(2*math.Pow(d, 2) + 2*math.Pow(m, 2))
		})
	case 13:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return 2 * math.Pow(m, 4) / math.Pow(d, 3)
		})
	case 14:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return 2 * math.Pow(d, 3) / math.Pow(m, 2)
		})
	case 15:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(4 * math.Pow(m, 3) / d)
		})
	case 16:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return 2 * math.Pow(d, 4) / math.Pow(m, 3)
		})
	case 17:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Pow(5*math.Pow(d, 4)+11*math.Pow(m, 4), 1.0/4.0)
		})
	case 18:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(2*math.Pow(d, 2) + 2*math.Pow(m, 3)/d)
		})
	case 19:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Pow(4*math.Pow(d, 4)+12*math.Pow(m, 3)*d, 1.0/4.0)
		})
	case 20:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(7*math.Pow(d, 2)+9*math.Pow(m, 2)) / 2
		})
	case 21:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(3*math.Pow(m, 2) + math.Pow(d, 3)/m)
		})
	case 22:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Pow(2*math.Pow(d, 4)+14*math.Pow(m, 2)*math.Pow(d, 2), 1.0/4.0)
		})
	case 23:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(math.Pow(d, 2) + 3*m*d)
		})
	case 24:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Pow(6*math.Pow(d, 4)+10*math.Pow(m, 4), 1.0/4.0)
		})
	case 25:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Pow(3*math.Pow(d, 4)+13*math.Pow(m, 2)*math.Pow(d, 2), 1.0/4.0)
		})
	case 26:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(5*math.Pow(d, 2)+11*m*d) / 2
		})
	case 27:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt((3*math.Pow(d, 2) + 5*m*d) / 2)
		})
	case 28:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(2*d*m + 2*math.Pow(m, 4)/math.Pow(d, 2))
		})
	case 29:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(math.Pow(m, 2) + 3*math.Pow(m, 3)/d)
		})
	case 30:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Pow(d, 2)/m + math.Pow(m, 3)/math.Pow(d, 2)
		})
	case 31:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return 4 * math.Pow(m, 2) / (d + m)
		})
	case 32:
		return vertexBound(n, deg, avg, func(d, m float64) float64 {
			return math.Sqrt(math.Pow(m, 3)*(3*d+m)) / d
		})

	case 33:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2*(di+dj) - (mi + mj)
		}, constFallback(0))
	case 34:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 * (math.Pow(di, 2) + math.Pow(dj, 2)) / (di + dj)
		}, constFallback(0))
	case 35:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 * (math.Pow(di, 2) + math.Pow(dj, 2)) / (mi + mj)
		}, constFallback(0))
	case 36:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 * (math.Pow(mi, 2) + math.Pow(mj, 2)) / (di + dj)
		}, constFallback(0))
	case 37:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return math.Sqrt(2 * (math.Pow(di, 2) + math.Pow(dj, 2)))
		}, constFallback(0))
	case 38:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(2*math.Pow(di-1, 2)+2*math.Pow(dj-1, 2))
		}, constFallback(0))
	case 39:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(2*(math.Pow(di, 2)+math.Pow(dj, 2))-4*(mi+mj)+4)
		}, constFallback(2))
	case 40:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(2*(math.Pow(mi-1, 2)+math.Pow(mj-1, 2))+(math.Pow(di, 2)+math.Pow(dj, 2))-(di*mi+dj*mj))
		}, constFallback(2))
	case 41:
		f := func(di, dj, mi, mj float64) float64 {
			return 2 - (di + dj) + (mi + mj) + math.Sqrt(2*(math.Pow(di, 2)+math.Pow(dj, 2))-4*(mi+mj)+4)
		}
		fb := func(di, dj, mi, mj float64) float64 {
			return 2 - (di + dj) + (mi + mj)
		}
		return edgeBound(n, adj, deg, avg, f, fb)
	case 42:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return math.Sqrt(math.Pow(di, 2) + math.Pow(dj, 2) + 2*mi*mj)
		}, constFallback(0))
	case 43:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(3*(math.Pow(mi, 2)+math.Pow(mj, 2))-2*mi*mj-4*(di+dj)+4)
		}, constFallback(2))
	case 44:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(2*(math.Pow(di-1, 2)+math.Pow(dj-1, 2)+mi*mj-di*dj))
		}, constFallback(2))
	case 45:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(math.Pow(di-dj, 2)+2*(di*mi+dj*mj)-4*(mi+mj)+4)
		}, constFallback(2))
	case 46:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(2*(math.Pow(di, 2)+math.Pow(dj, 2))-16*(di*dj)/(mi+mj)+4)
		}, constFallback(2))
	case 47:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return (2*(math.Pow(di, 2)+math.Pow(dj, 2)) - math.Pow(mi-mj, 2)) / (di + dj)
		}, constFallback(0))
	case 48:
		f := func(di, dj, mi, mj float64) float64 {
			return 2 * (math.Pow(di, 2) + math.Pow(dj, 2)) / (2 + math.Sqrt(2*(math.Pow(di, 2)+math.Pow(dj, 2))-4*(mi+mj)+4))
		}
		fb := func(di, dj, mi, mj float64) float64 {
			return math.Pow(di, 2) + math.Pow(dj, 2)
		}
		return edgeBound(n, adj, deg, avg, f, fb)
	case 49:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(2*(math.Pow(mi, 2)+math.Pow(mj, 2))+math.Pow(di-dj, 2)-4*(di+dj)+4)
		}, constFallback(2))
	case 50:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 * ((math.Pow(di, 2) + math.Pow(dj, 2) + mi*mj - di*dj) / (di + dj))
		}, constFallback(0))
	case 51:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2*(mi+mj) - 4*mi*mj/(di+dj)
		}, constFallback(0))
	case 52:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(math.Sqrt(8*(math.Pow(mi, 4)+math.Pow(mj, 4))-8*(math.Pow(di, 2)+math.Pow(dj, 2))+4)-4*(di+dj)+6)
		}, constFallback(2))
	case 53:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(math.Sqrt(8*(math.Pow(mi, 4)+math.Pow(mj, 4))-8*(di*mi+dj*mj)+4)-4*(di+dj)+6)
		}, constFallback(2))
	case 54:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(2*(math.Pow(mi, 2)+math.Pow(mj, 2))+(di*mi+dj*mj)-(math.Pow(di, 2)+math.Pow(dj, 2))-4*(di+dj)+4)
		}, constFallback(2))
	case 55:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(3*(math.Pow(mi, 2)+math.Pow(mj, 2))-(math.Pow(di, 2)+math.Pow(dj, 2))-4*(mi+mj)+4)
		}, constFallback(2))
	case 56:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return ((math.Pow(di, 2) + math.Pow(dj, 2)) * (mi + mj)) / (2 * di * dj)
		}, constFallback(0))
	case 57:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(2*(math.Pow(mi, 2)+math.Pow(mj, 2))-8*(math.Pow(di, 2)+math.Pow(dj, 2))/(mi+mj)+4)
		}, constFallback(2))
	case 58:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(2*(math.Pow(mi, 2)+mi*mj+math.Pow(mj, 2))-(di*mi+dj*mj)-4*(di+dj)+4)
		}, constFallback(2))
	case 59:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return (2*(math.Pow(mi, 2)+mi*mj+math.Pow(mj, 2)) - (math.Pow(di, 2) + math.Pow(dj, 2))) / (mi + mj)
		}, constFallback(0))
	case 60:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(2*(math.Pow(mi, 2)+mi*mj+math.Pow(mj, 2))-(math.Pow(di, 2)+math.Pow(dj, 2))-4*(di+dj)+4)
		}, constFallback(2))
	case 61:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 * (math.Pow(mi, 2) + math.Pow(mj, 2)) / (2 + math.Sqrt(2*math.Pow(di-1, 2)+2*math.Pow(dj-1, 2)))
		}, constFallback(0))
	case 62:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(math.Pow(mi, 2)+4*mi*mj+math.Pow(mj, 2)-2*di*dj-4*(di+dj)+4)
		}, constFallback(2))
	case 63:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return di + dj + mi + mj - 4*di*dj/(mi+mj)
		}, constFallback(0))
	case 64:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return mi * mj * (di + dj) / (di * dj)
		}, constFallback(0))
	case 65:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return (mi + mj) * (di*mi + dj*mj) / (2 * mi * mj)
		}, constFallback(0))
	case 66:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return (math.Pow(mi, 2) + 4*mi*mj + math.Pow(mj, 2) - (di*mi + dj*mj)) / (di + dj)
		}, constFallback(0))
	case 67:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return (mi + mj) * (di*mi + dj*mj) / (2 * di * dj)
		}, constFallback(0))
	case 68:
		return edgeBound(n, adj, deg, avg, func(di, dj, mi, mj float64) float64 {
			return 2 + math.Sqrt(math.Pow(mi-mj, 2)+4*di*dj-4*(mi+mj)+4)
		}, constFallback(2))
	}

	return 0
}

// vertexBound applies f over every vertex of the graph and returns the
// largest result, falling back to 0 wherever f is undefined (NaN), or 0
// overall if the graph has no vertices.
func vertexBound(n int, deg, avg []float64, f func(d, m float64) float64) float64 {
	best := 0.0
	any := false
	for i := 0; i < n; i++ {
		v := f(deg[i], avg[i])
		if math.IsNaN(v) {
			v = 0.0
		}
		if !any || v > best {
			best = v
			any = true
		}
	}
	if !any {
		return 0.0
	}
	return best
}

// edgeBound applies f over every edge (i, j) of the graph and returns the
// largest result, falling back to fallback(di, dj, mi, mj) wherever f is
// undefined (NaN), or 0 overall if the graph has no edges.
func edgeBound(n int, adj [][]float64, deg, avg []float64, f, fallback func(di, dj, mi, mj float64) float64) float64 {
	best := 0.0
	any := false
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj[i][j] != 1 {
				continue
			}
			di, dj, mi, mj := deg[i], deg[j], avg[i], avg[j]
			v := f(di, dj, mi, mj)
			if math.IsNaN(v) {
				v = fallback(di, dj, mi, mj)
			}
			if !any || v > best {
				best = v
				any = true
			}
		}
	}
	if !any {
		return 0.0
	}
	return best
}

func constFallback(c float64) func(float64, float64, float64, float64) float64 {
	return func(float64, float64, float64, float64) float64 { return c }
}
