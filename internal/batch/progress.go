/*
 * progress.go, part of gofrag.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package batch

import "go.uber.org/zap"

//progressEvery is the number of finished molecules between progress log entries.
const progressEvery = 1000

type job struct {
	fragments int
	err       error
}

//progress counts finished molecules and logs the advance. JobDone can be called
//from several goroutines.
type progress struct {
	jobs chan job
	done chan struct{}
}

func newProgress(total int, logger *zap.Logger) progress {
	p := progress{make(chan job), make(chan struct{})}
	go func() {
		completed, failed, fragments := 0, 0, 0
		for j := range p.jobs {
			completed++
			if j.err != nil {
				failed++
			}
			fragments += j.fragments
			if completed%progressEvery == 0 {
				logger.Info("progress",
					zap.String("message", "compounds were finished to decompose"),
					zap.Int("compounds", completed), zap.Int("total", total),
					zap.Int("fragments", fragments), zap.Int("failed", failed))
			}
		}
		logger.Info("decomposition finished", zap.Int("compounds", completed), zap.Int("fragments", fragments), zap.Int("failed", failed))
		close(p.done)
	}()
	return p
}

func (p progress) jobDone(fragments int, err error) {
	p.jobs <- job{fragments, err}
}

func (p progress) close() {
	close(p.jobs)
	<-p.done
}
