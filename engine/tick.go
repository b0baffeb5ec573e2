package engine

// Tick advances the level by one step. While a level transition counts down
// nothing else moves. Otherwise figures are visited from the newest to the
// oldest: dead ones play their death animation and are removed when it ends,
// live ones are tested against every older live figure and then moved. Items
// animate last.
func (l *Level) Tick() {
	if !l.active {
		return
	}
	l.tick++

	if l.nextCycles > 0 {
		l.nextCycles--
		l.nextLoad()
		return
	}

	for i := len(l.figures) - 1; i >= 0; i-- {
		f := l.figures[i]
		b := f.Base()

		if b.Dead {
			if f.Death() {
				f.PlayFrame()
				continue
			}
			if _, ok := f.(Carrier); ok {
				l.Reload()
				return
			}
			l.remove(i)
			continue
		}

		for j := i - 1; j >= 0; j-- {
			if b.Dead {
				break
			}
			opp := l.figures[j]
			ob := opp.Base()
			if ob.Dead || !b.Overlaps(ob) {
				continue
			}
			f.Hit(opp)
			opp.Hit(f)
		}

		if !b.Dead {
			f.Move()
			f.PlayFrame()
		}
	}

	for i := len(l.items) - 1; i >= 0; i-- {
		l.items[i].PlayFrame()
	}
}
